// Package database builds the Postgres pool the active profile's DB_PASS feeds into.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxConns          = 10
	healthCheckPeriod = 30 * time.Second
)

// ErrMissingDSN is returned when no connection string is configured.
var ErrMissingDSN = errors.New("database url not set")

// PoolConfig parses dsn and sets the connection password. The password always
// wins over one embedded in dsn.
func PoolConfig(dsn, password string) (*pgxpool.Config, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.ConnConfig.Password = password
	cfg.MaxConns = maxConns
	cfg.HealthCheckPeriod = healthCheckPeriod
	return cfg, nil
}

// Open builds a pool without dialing; connections are made on first use, so a
// database outage surfaces through Ping rather than at startup.
func Open(ctx context.Context, dsn, password string) (*pgxpool.Pool, error) {
	cfg, err := PoolConfig(dsn, password)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return pool, nil
}

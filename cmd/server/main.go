package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/profile-service/internal/config"
	"github.com/preston-bernstein/profile-service/internal/logging"
	"github.com/preston-bernstein/profile-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "profile-service"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	registry := config.LoadRegistry()

	profile, err := registry.Lookup(cfg.Environment)
	if err != nil {
		return fmt.Errorf("select profile from APP_ENV: %w", err)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   profile.LogLevel(),
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})
	logger = logger.With(slog.String(logging.FieldProfile, profile.Name.String()))

	if profile.Name == config.Production && profile.UsesDefaultDBPass() {
		logging.Warn(logger, "production is running with the default DB_PASS")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, registry, profile, logger)
	srv.Run(ctx, stop)
	return nil
}

package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/profile-service/internal/config"
	"github.com/preston-bernstein/profile-service/internal/database"
	httpserver "github.com/preston-bernstein/profile-service/internal/http"
	"github.com/preston-bernstein/profile-service/internal/http/handlers"
	"github.com/preston-bernstein/profile-service/internal/http/middleware"
	"github.com/preston-bernstein/profile-service/internal/logging"
	"github.com/preston-bernstein/profile-service/internal/metrics"
)

// dbPool is the part of *pgxpool.Pool the server relies on.
type dbPool interface {
	Ping(ctx context.Context) error
	Close()
}

var (
	metricsSetup = metrics.Setup
	openDatabase = func(ctx context.Context, dsn, password string) (dbPool, error) {
		pool, err := database.Open(ctx, dsn, password)
		if err != nil {
			return nil, err
		}
		return pool, nil
	}
)

type Server struct {
	cfg           config.Config
	profile       config.Profile
	logger        *slog.Logger
	metrics       *metrics.Recorder
	db            dbPool
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New wires the HTTP, metrics and database components for the selected profile.
func New(cfg config.Config, registry *config.Registry, profile config.Profile, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, registry, profile, logger, nil)
}

func newServerWithMetrics(cfg config.Config, registry *config.Registry, profile config.Profile, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{Level: profile.LogLevel()})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	recorder.RecordProfileSelected(profile.Name.String())

	db, dbErr := buildDatabase(cfg, profile, logger)
	handler := handlers.NewHandler(registry, profile, logger, readiness(db, dbErr))
	httpSrv := buildHTTPServer(cfg, handler, logger, recorder)

	return &Server{
		cfg:           cfg,
		profile:       profile,
		logger:        logger,
		metrics:       recorder,
		db:            db,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, profile config.Profile, logger *slog.Logger, httpSrv httpServer, db dbPool) *Server {
	return &Server{
		cfg:        cfg,
		profile:    profile,
		logger:     logger,
		metrics:    metrics.NewRecorder(),
		db:         db,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildDatabase(cfg config.Config, profile config.Profile, logger *slog.Logger) (dbPool, error) {
	if cfg.DatabaseURL == "" {
		logging.Info(logger, "database disabled, DATABASE_URL not set")
		return nil, nil
	}
	db, err := openDatabase(context.Background(), cfg.DatabaseURL, profile.DBPass)
	if err != nil {
		logging.Error(logger, "database setup failed, readiness will report it", err)
		return nil, err
	}
	return db, nil
}

// readiness pings the database when one is configured.
func readiness(db dbPool, setupErr error) handlers.ReadyFunc {
	if setupErr != nil {
		return func(context.Context) error { return setupErr }
	}
	if db == nil {
		return nil
	}
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, readyTimeout)
		defer cancel()
		return db.Ping(ctx)
	}
}

// Run starts the HTTP and metrics servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting",
		slog.String(logging.FieldAddr, s.httpServer.Addr()),
		slog.Any("settings", s.profile),
	)
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String(logging.FieldAddr, s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.db != nil {
		s.db.Close()
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(logger, name+" server failed", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

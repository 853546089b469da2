package config

const (
	envAppEnv       = "APP_ENV"
	envDBPass       = "DB_PASS"
	envPort         = "PORT"
	envDatabaseURL  = "DATABASE_URL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// DefaultDBPass is the DB_PASS value used when the environment does not provide one.
	DefaultDBPass = "this-is-the-default-value"

	defaultEnvironment = string(Production)
	defaultPort        = "4000"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	defaultServiceName = "profile-service"

	maskedValue = "***"
)

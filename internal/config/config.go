package config

// Config holds runtime configuration for the server. Profile settings live in
// the Registry; Environment only names which profile to select.
type Config struct {
	Environment string
	Port        string
	DatabaseURL string
	Log         LogConfig
	Metrics     MetricsConfig
}

// LogConfig controls log output. The level comes from the selected profile.
type LogConfig struct {
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Environment: envOrDefault(envAppEnv, defaultEnvironment),
		Port:        envOrDefault(envPort, defaultPort),
		DatabaseURL: envOrDefault(envDatabaseURL, ""),
		Log: LogConfig{
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}

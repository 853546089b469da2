package config

// Settings is the complete set of values every profile exposes.
type Settings struct {
	Debug       bool   `json:"DEBUG"`
	Development bool   `json:"DEVELOPMENT"`
	DBPass      string `json:"DB_PASS"`
}

// LogLevel maps DEBUG onto a log level name.
func (s Settings) LogLevel() string {
	if s.Debug {
		return "debug"
	}
	return "info"
}

// UsesDefaultDBPass reports whether DB_PASS fell back to DefaultDBPass.
func (s Settings) UsesDefaultDBPass() bool {
	return s.DBPass == DefaultDBPass
}

// Masked returns a copy with DB_PASS hidden, for logs and API responses.
func (s Settings) Masked() Settings {
	if s.DBPass != "" {
		s.DBPass = maskedValue
	}
	return s
}

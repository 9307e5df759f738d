package config

import "time"

// Config holds runtime settings for the dayjournal CLI.
//
// Fields:
//   - BaseURL: root URL of the journal backend REST API.
//   - TokenDBPath: path of the local SQLite file holding the credential.
//   - ExpiryCheckInterval: how often the background watcher inspects the
//     stored credential's exp claim.
//   - LogLevel: minimum slog level ("debug", "info", "warn", "error").
type Config struct {
	BaseURL             string
	TokenDBPath         string
	ExpiryCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:5000"
	c.TokenDBPath = "journal.db"
	c.ExpiryCheckInterval = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

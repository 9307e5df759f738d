package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment
// variables win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("JOURNAL_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("JOURNAL_TOKEN_DB"); v != "" {
		cfg.TokenDBPath = v
	}
	if v := os.Getenv("JOURNAL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("JOURNAL_EXPIRY_CHECK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ExpiryCheckInterval = d
		}
	}
}

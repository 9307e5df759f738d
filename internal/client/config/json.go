package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/dayjournal/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are strings accepted by time.ParseDuration; values are copied into the
// runtime Config after parsing.
type JsonConfig struct {
	BaseURL             string `json:"base_url"`
	TokenDBPath         string `json:"token_db_path"`
	ExpiryCheckInterval string `json:"expiry_check_interval"`
	LogLevel            string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// from the -c/-config flags. No flag means no JSON is loaded. Read or
// unmarshal errors panic; intended usage is defaults -> env -> parseJson
// -> parseFlags, where later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.TokenDBPath != "" {
		cfg.TokenDBPath = jc.TokenDBPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.ExpiryCheckInterval != "" {
		d, err := time.ParseDuration(jc.ExpiryCheckInterval)
		if err != nil {
			panic(err)
		}
		cfg.ExpiryCheckInterval = d
	}
}

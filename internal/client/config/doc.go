// Package config loads runtime configuration for the dayjournal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally loaded from a .env file.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the journal backend
//	-d string   path to the local token database
//	-i int      credential expiry check interval (seconds)
//
// # JSON schema
//
// Durations are strings accepted by time.ParseDuration:
//
//	{
//	  "base_url": "http://127.0.0.1:5000",
//	  "token_db_path": "journal.db",
//	  "expiry_check_interval": "30s"
//	}
//
// Environment variables
//
//	JOURNAL_API_URL, JOURNAL_TOKEN_DB, JOURNAL_LOG_LEVEL,
//	JOURNAL_EXPIRY_CHECK_INTERVAL
package config

package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/dayjournal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the journal backend (default from Config)
//	-d string   path to the local token database
//	-i int      expiry check interval in seconds (default from Config)
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the journal backend")
	fs.StringVar(&cfg.TokenDBPath, "d", cfg.TokenDBPath, "path to the local token database")
	expiryCheckInterval := fs.Int("i", int(cfg.ExpiryCheckInterval.Seconds()), "expiry check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ExpiryCheckInterval = time.Duration(*expiryCheckInterval) * time.Second
}

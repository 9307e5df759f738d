package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/dayjournal/internal/buildinfo"
	"github.com/dmitrijs2005/dayjournal/internal/client/api"
	"github.com/dmitrijs2005/dayjournal/internal/client/cli"
	"github.com/dmitrijs2005/dayjournal/internal/client/config"
	"github.com/dmitrijs2005/dayjournal/internal/client/services"
	"github.com/dmitrijs2005/dayjournal/internal/client/session"
	"github.com/dmitrijs2005/dayjournal/internal/client/state"
	"github.com/dmitrijs2005/dayjournal/internal/client/storage"
	"github.com/dmitrijs2005/dayjournal/internal/client/token"
	"github.com/dmitrijs2005/dayjournal/internal/logging"

	_ "modernc.org/sqlite"
)

func logLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger(os.Stderr, logLevel(cfg.LogLevel))

	db, err := storage.InitDatabase(ctx, cfg.TokenDBPath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	tokens := token.NewSQLiteStore(db)
	notifier := session.NewNotifier()

	apiClient := api.NewRESTClient(cfg.BaseURL, tokens, notifier, logger)

	authStore := state.NewAuthStore(services.NewAuthService(apiClient, tokens))
	entryStore := state.NewEntryStore(services.NewEntryService(apiClient), authStore.Epoch)

	unsubscribe := notifier.Subscribe(authStore.HandleSessionExpired)
	defer unsubscribe()

	app := cli.NewApp(cfg, authStore, entryStore, services.NewProfileService(apiClient), logger)

	go app.StartExpiryWatcher(ctx, cfg.ExpiryCheckInterval)

	app.Run(ctx)
}

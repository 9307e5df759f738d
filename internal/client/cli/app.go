package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/dmitrijs2005/dayjournal/internal/client/config"
	"github.com/dmitrijs2005/dayjournal/internal/client/nav"
	"github.com/dmitrijs2005/dayjournal/internal/client/services"
	"github.com/dmitrijs2005/dayjournal/internal/client/state"
	"github.com/dmitrijs2005/dayjournal/internal/logging"
)

// App ties the stores and services to the interactive shell. The current
// screen is owned here; command handlers emit nav events and apply moves
// the machine.
type App struct {
	config   *config.Config
	auth     *state.AuthStore
	entries  *state.EntryStore
	profiles services.ProfileService
	log      logging.Logger

	reader  *bufio.Reader
	current nav.Screen
}

func NewApp(
	cfg *config.Config,
	auth *state.AuthStore,
	entries *state.EntryStore,
	profiles services.ProfileService,
	log logging.Logger,
) *App {
	return &App{
		config:   cfg,
		auth:     auth,
		entries:  entries,
		profiles: profiles,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		current:  nav.Initial,
	}
}

// Run starts the REPL on stdin and blocks until the user exits or input
// is exhausted.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to dayjournal (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}

// StartExpiryWatcher periodically inspects the stored credential so an
// expired session is noticed even while the user is idle. Blocks until
// ctx is done; run it on its own goroutine.
func (a *App) StartExpiryWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			checkCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.auth.CheckTokenExpiry(checkCtx)
			cancel()
			if err != nil {
				a.log.Warn(ctx, "token expiry check failed", "error", err)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) apply(event nav.Event) {
	next := nav.Transition(a.current, event)
	if next != a.current {
		a.current = next
	}
}

func (a *App) screen() nav.Screen {
	return a.current
}

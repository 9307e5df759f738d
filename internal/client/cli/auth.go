package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/dayjournal/internal/client/nav"
	"github.com/dmitrijs2005/dayjournal/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Login prompts for credentials and authenticates through the auth store.
//
// On success it greets the user, moves to the dashboard and fetches the
// entry list. On failure the store's message is shown and the transient
// flags are reset so the next attempt starts clean. The password byte
// slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		a.log.Debug(ctx, "login rejected", "error", err)
	}

	st := a.auth.State()
	switch {
	case st.SessionExpired:
		// the overlay takes over on the next prompt
	case st.IsError:
		printlnFn(st.Message)
		a.auth.Reset()
	case st.User != nil:
		printlnFn("Welcome, " + st.User.Username + "!")
		a.auth.Reset()
		a.apply(nav.EventLoginSucceeded)
		return a.Refresh(ctx)
	}
	return nil
}

// Register prompts for account details and attempts to create an account.
// A created account still signs in through the login screen.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, email, username, string(password)); err != nil {
		a.log.Debug(ctx, "registration rejected", "error", err)
	}

	st := a.auth.State()
	switch {
	case st.SessionExpired:
	case st.IsError:
		printlnFn(st.Message)
		a.auth.Reset()
	default:
		printlnFn("Account created. Please log in.")
		a.auth.Reset()
		a.apply(nav.EventRegisterSucceeded)
	}
	return nil
}

// Logout signs the user out. Local sign-out always succeeds; a failed
// credential cleanup is only logged.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "credential cleanup failed", "error", err)
	}
	a.entries.Clear()
	a.apply(nav.EventLogout)
	printlnFn("Signed out.")
	return nil
}

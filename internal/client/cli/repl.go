package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/dayjournal/internal/client/nav"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	screen() nav.Screen
	status() string
	sessionExpired() bool
	ackSessionExpired()

	Login(ctx context.Context) error
	OpenRegister()
	Register(ctx context.Context) error
	Back()
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Refresh(ctx context.Context) error
	OpenSettings()
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Stats(ctx context.Context) error
	Logout(ctx context.Context) error
}

// helpFor lists the commands available on a screen.
func helpFor(s nav.Screen) string {
	switch s {
	case nav.ScreenLogin:
		return "Available commands: login, register, exit"
	case nav.ScreenRegister:
		return "Available commands: register, back, exit"
	case nav.ScreenDashboard:
		return "Available commands: (l)ist, add, edit, delete, refresh, settings, logout, exit"
	case nav.ScreenSettings:
		return "Available commands: profile, update, stats, back, logout, exit"
	}
	return ""
}

// runREPL starts the screen-driven read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' according to the active screen.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Before every prompt the session-expired flag is checked. While it is set
// the loop shows a blocking acknowledgement instead of the prompt; the
// acknowledgement clears the flag and forces the login screen. This is how
// expiry detected anywhere (a background check, a rejected request) reaches
// the user regardless of the screen they were on.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		if a.sessionExpired() {
			printlnFn("Session expired. Press Enter to return to the login screen.")
			if !scanner.Scan() {
				return
			}
			a.ackSessionExpired()
			continue
		}

		printlnFn(fmt.Sprintf("dj:%s %s> ", a.screen(), a.status()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn(helpFor(a.screen()))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		switch a.screen() {
		case nav.ScreenLogin:
			switch cmd {
			case "login":
				_ = a.Login(ctx)
			case "register":
				a.OpenRegister()
			default:
				printlnFn("Unknown command:", cmd)
			}

		case nav.ScreenRegister:
			switch cmd {
			case "register":
				_ = a.Register(ctx)
			case "back":
				a.Back()
			default:
				printlnFn("Unknown command:", cmd)
			}

		case nav.ScreenDashboard:
			switch cmd {
			case "l", "list":
				_ = a.List(ctx)
			case "add":
				_ = a.Add(ctx)
			case "edit":
				_ = a.Edit(ctx)
			case "delete":
				_ = a.Delete(ctx)
			case "refresh":
				_ = a.Refresh(ctx)
			case "settings":
				a.OpenSettings()
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		case nav.ScreenSettings:
			switch cmd {
			case "profile":
				_ = a.Profile(ctx)
			case "update":
				_ = a.UpdateProfile(ctx)
			case "stats":
				_ = a.Stats(ctx)
			case "back":
				a.Back()
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

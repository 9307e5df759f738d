// Package cli provides the interactive dayjournal command-line client.
//
// It presents the application as a set of screens (login, register,
// dashboard, settings) driven by a read-eval-print loop. Each screen has its
// own command set; screens never switch imperatively, they emit navigation
// events that the shell feeds through nav.Transition.
//
// Key features:
//   - Register / Login / Logout against the journal backend
//   - List, add, edit and delete journal entries
//   - Profile viewing and updating, plus writing statistics
//   - A blocking session-expired overlay that forces re-login whenever the
//     stored credential turns out to be expired or rejected
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartExpiryWatcher, and runREPL for details.
package cli

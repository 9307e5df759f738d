package cli

import "github.com/dmitrijs2005/dayjournal/internal/client/nav"

// status renders the identity part of the prompt, e.g. "(alice)".
func (a *App) status() string {
	st := a.auth.State()
	if st.User == nil {
		return ""
	}
	return "(" + st.User.Username + ")"
}

func (a *App) sessionExpired() bool {
	return a.auth.State().SessionExpired
}

// ackSessionExpired dismisses the overlay: transient flags are cleared, the
// cached entries are dropped, and the machine is forced onto the login
// screen.
func (a *App) ackSessionExpired() {
	a.auth.Reset()
	a.entries.Clear()
	a.apply(nav.EventSessionExpired)
}

// OpenRegister switches from the login screen to the registration form.
func (a *App) OpenRegister() {
	a.apply(nav.EventOpenRegister)
}

// OpenSettings switches from the dashboard to the settings screen.
func (a *App) OpenSettings() {
	a.apply(nav.EventOpenSettings)
}

// Back returns to the screen the current one was opened from.
func (a *App) Back() {
	a.apply(nav.EventBack)
}

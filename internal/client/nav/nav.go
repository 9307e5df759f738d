// Package nav models screen navigation as an explicit finite-state machine.
//
// Screens never navigate imperatively; they emit events and the shell feeds
// them through Transition.
package nav

// Screen identifies one of the client's screens.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenDashboard
	ScreenSettings
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenDashboard:
		return "dashboard"
	case ScreenSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Event is something that happened on a screen or globally.
type Event int

const (
	// EventLoginSucceeded fires after a successful login.
	EventLoginSucceeded Event = iota
	// EventRegisterSucceeded fires after a successful registration.
	EventRegisterSucceeded
	// EventOpenRegister is the explicit "create account" action on Login.
	EventOpenRegister
	// EventOpenSettings is the explicit settings action on Dashboard.
	EventOpenSettings
	// EventBack returns to the screen the current one was opened from
	// (Register to Login, Settings to Dashboard).
	EventBack
	// EventLogout is an explicit sign-out from any authenticated screen.
	EventLogout
	// EventSessionExpired forces re-login from anywhere.
	EventSessionExpired
)

// Initial is the screen shown at startup.
const Initial = ScreenLogin

// Transition returns the next screen for an event on the current screen.
// Events that do not apply to the current screen leave it unchanged, with
// two forced exceptions: session expiry and logout always land on Login.
func Transition(current Screen, event Event) Screen {
	switch event {
	case EventSessionExpired, EventLogout:
		return ScreenLogin
	}

	switch current {
	case ScreenLogin:
		switch event {
		case EventLoginSucceeded:
			return ScreenDashboard
		case EventOpenRegister:
			return ScreenRegister
		}
	case ScreenRegister:
		switch event {
		case EventRegisterSucceeded, EventBack:
			return ScreenLogin
		}
	case ScreenDashboard:
		if event == EventOpenSettings {
			return ScreenSettings
		}
	case ScreenSettings:
		if event == EventBack {
			return ScreenDashboard
		}
	}

	return current
}

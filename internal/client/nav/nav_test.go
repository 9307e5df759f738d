package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		current Screen
		event   Event
		want    Screen
	}{
		{"login success opens dashboard", ScreenLogin, EventLoginSucceeded, ScreenDashboard},
		{"login can open register", ScreenLogin, EventOpenRegister, ScreenRegister},
		{"register success returns to login", ScreenRegister, EventRegisterSucceeded, ScreenLogin},
		{"register back to login", ScreenRegister, EventBack, ScreenLogin},
		{"dashboard opens settings", ScreenDashboard, EventOpenSettings, ScreenSettings},
		{"settings back to dashboard", ScreenSettings, EventBack, ScreenDashboard},

		{"logout from dashboard", ScreenDashboard, EventLogout, ScreenLogin},
		{"logout from settings", ScreenSettings, EventLogout, ScreenLogin},

		{"session expiry from dashboard", ScreenDashboard, EventSessionExpired, ScreenLogin},
		{"session expiry from settings", ScreenSettings, EventSessionExpired, ScreenLogin},
		{"session expiry from register", ScreenRegister, EventSessionExpired, ScreenLogin},
		{"session expiry on login stays", ScreenLogin, EventSessionExpired, ScreenLogin},

		{"inapplicable event is ignored", ScreenLogin, EventBack, ScreenLogin},
		{"settings ignores login success", ScreenSettings, EventLoginSucceeded, ScreenSettings},
		{"dashboard ignores register success", ScreenDashboard, EventRegisterSucceeded, ScreenDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(tt.current, tt.event))
		})
	}
}

func TestInitialScreen(t *testing.T) {
	assert.Equal(t, ScreenLogin, Initial)
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "login", ScreenLogin.String())
	assert.Equal(t, "register", ScreenRegister.String())
	assert.Equal(t, "dashboard", ScreenDashboard.String())
	assert.Equal(t, "settings", ScreenSettings.String())
	assert.Equal(t, "unknown", Screen(99).String())
}

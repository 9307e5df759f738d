package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/dayjournal/internal/client/nav"
)

type fakeExec struct {
	scr     nav.Screen
	expired bool

	calls []string
}

func (f *fakeExec) screen() nav.Screen   { return f.scr }
func (f *fakeExec) status() string       { return "" }
func (f *fakeExec) sessionExpired() bool { return f.expired }
func (f *fakeExec) ackSessionExpired() {
	f.calls = append(f.calls, "ack")
	f.expired = false
	f.scr = nav.ScreenLogin
}

func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.scr = nav.ScreenDashboard
	return nil
}
func (f *fakeExec) OpenRegister() {
	f.calls = append(f.calls, "openregister")
	f.scr = nav.ScreenRegister
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.scr = nav.ScreenLogin
	return nil
}
func (f *fakeExec) Back() {
	f.calls = append(f.calls, "back")
	switch f.scr {
	case nav.ScreenRegister:
		f.scr = nav.ScreenLogin
	case nav.ScreenSettings:
		f.scr = nav.ScreenDashboard
	}
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Add(ctx context.Context) error  { f.calls = append(f.calls, "add"); return nil }
func (f *fakeExec) Edit(ctx context.Context) error { f.calls = append(f.calls, "edit"); return nil }
func (f *fakeExec) Delete(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) Refresh(ctx context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}
func (f *fakeExec) OpenSettings() {
	f.calls = append(f.calls, "opensettings")
	f.scr = nav.ScreenSettings
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) UpdateProfile(ctx context.Context) error {
	f.calls = append(f.calls, "update")
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error {
	f.calls = append(f.calls, "stats")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.scr = nav.ScreenLogin
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_ScreenFlow(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"list",
		"add",
		"settings",
		"stats",
		"back",
		"refresh",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{scr: nav.ScreenLogin}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, sc)

	wantOrder := []string{"login", "list", "add", "opensettings", "stats", "back", "refresh", "logout"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantOrder)
	}
	for i, c := range exec.calls {
		if c != wantOrder[i] {
			t.Fatalf("calls mismatch at %d: got %v, want %v", i, exec.calls, wantOrder)
		}
	}
}

func TestRunREPL_CommandsAreScreenScoped(t *testing.T) {
	silencePrintln(t)

	// Dashboard commands typed on the login screen must not dispatch.
	input := strings.NewReader("list\nadd\ndelete\nquit\n")
	exec := &fakeExec{scr: nav.ScreenLogin}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_SessionExpiredOverlay(t *testing.T) {
	silencePrintln(t)

	// The first line acknowledges the overlay; commands only run after.
	input := strings.NewReader("\nlogin\nexit\n")
	exec := &fakeExec{scr: nav.ScreenDashboard, expired: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, sc)

	want := []string{"ack", "login"}
	if len(exec.calls) != len(want) || exec.calls[0] != "ack" || exec.calls[1] != "login" {
		t.Fatalf("got %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_RegisterScreen(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("register\nregister\nback\nexit\n")
	exec := &fakeExec{scr: nav.ScreenLogin}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, sc)

	want := []string{"openregister", "register"}
	if len(exec.calls) != len(want) {
		t.Fatalf("got %v, want %v", exec.calls, want)
	}
	// "back" on the login screen (after register returned there) is unknown
	// and must not dispatch.
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("got %v, want %v", exec.calls, want)
		}
	}
}

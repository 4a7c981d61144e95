package auth

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lymphwatch/internal/config"
	"github.com/abhisek/lymphwatch/internal/i18n"
	"github.com/abhisek/lymphwatch/internal/router"
	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/store"
	"github.com/abhisek/lymphwatch/internal/ui/state"
)

type fakeUsers struct {
	passwords map[string]string
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{passwords: make(map[string]string)}
}

func (f *fakeUsers) Register(_ context.Context, name, password string) error {
	if name == "" || password == "" {
		return store.ErrInvalidCredentials
	}
	if _, ok := f.passwords[name]; ok {
		return store.ErrUserExists
	}
	f.passwords[name] = password
	return nil
}

func (f *fakeUsers) Authenticate(_ context.Context, name, password string) error {
	if f.passwords[name] != password || password == "" {
		return store.ErrInvalidCredentials
	}
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, name, password string) error {
	if err := f.Authenticate(context.Background(), name, password); err != nil {
		return err
	}
	delete(f.passwords, name)
	return nil
}

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                           { return nil }
func (stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return stubScreen{}, nil }
func (stubScreen) View(int, int) string                    { return "" }
func (stubScreen) Title() string                           { return "home" }

func newTestAuth(t *testing.T, users store.UserRepo) (*AuthScreen, *state.State, *int) {
	t.Helper()
	loc, err := i18n.New("en")
	if err != nil {
		t.Fatalf("load localizer: %v", err)
	}
	st := state.New(config.Default(), "", loc)

	calls := 0
	factory := func() screen.Screen {
		calls++
		return stubScreen{}
	}
	return New(users, st, factory), st, &calls
}

func TestLoginSuccessReplacesWithHome(t *testing.T) {
	users := newFakeUsers()
	users.passwords["ada"] = "s3cret"
	a, st, calls := newTestAuth(t, users)

	a.username.SetValue("ada")
	a.password.SetValue("s3cret")

	msg := a.submit()()
	_, cmd := a.Update(msg)
	if cmd == nil {
		t.Fatal("expected a navigation command after login")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if st.User != "ada" {
		t.Errorf("state user = %q, want ada", st.User)
	}
	if *calls != 1 {
		t.Errorf("home factory called %d times, want 1", *calls)
	}
}

func TestLoginFailureShowsNotice(t *testing.T) {
	a, st, _ := newTestAuth(t, newFakeUsers())

	a.username.SetValue("ada")
	a.password.SetValue("wrong")

	a.Update(a.submit()())
	if a.notice == "" || a.noticeOK {
		t.Error("expected an error notice after a failed login")
	}
	if st.User != "" {
		t.Error("failed login must not sign the user in")
	}
}

func TestRegisterThenSwitchToLogin(t *testing.T) {
	users := newFakeUsers()
	a, _, calls := newTestAuth(t, users)

	a.mode = modeRegister
	a.username.SetValue("ada")
	a.password.SetValue("s3cret")

	_, cmd := a.Update(a.submit()())
	if cmd != nil {
		t.Error("registration must not navigate")
	}
	if a.mode != modeLogin {
		t.Error("expected mode back to login after registration")
	}
	if !a.noticeOK {
		t.Error("expected a success notice after registration")
	}
	if a.password.Value() != "" {
		t.Error("password field must be cleared after registration")
	}
	if users.passwords["ada"] != "s3cret" {
		t.Error("expected the account created")
	}
	if *calls != 0 {
		t.Error("home factory must not run before login")
	}
}

func TestRegisterExistingUser(t *testing.T) {
	users := newFakeUsers()
	users.passwords["ada"] = "old"
	a, _, _ := newTestAuth(t, users)

	a.mode = modeRegister
	a.username.SetValue("ada")
	a.password.SetValue("new")

	a.Update(a.submit()())
	loc, _ := i18n.New("en")
	if a.notice != loc.Text("register_exists") {
		t.Errorf("notice = %q, want the taken-username message", a.notice)
	}
}

func TestUsernameIsTrimmed(t *testing.T) {
	users := newFakeUsers()
	users.passwords["ada"] = "s3cret"
	a, st, _ := newTestAuth(t, users)

	a.username.SetValue("  ada  ")
	a.password.SetValue("s3cret")

	a.Update(a.submit()())
	if st.User != "ada" {
		t.Errorf("state user = %q, want trimmed ada", st.User)
	}
}

func TestViewShowsBothTabs(t *testing.T) {
	a, _, _ := newTestAuth(t, newFakeUsers())
	view := a.View(80, 24)

	loc, _ := i18n.New("en")
	if !strings.Contains(view, loc.Text("login")) || !strings.Contains(view, loc.Text("register")) {
		t.Error("expected both mode tabs in view")
	}
}

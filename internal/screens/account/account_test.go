package account

import (
	"context"
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

func (f *fakeUsers) Register(_ context.Context, name, password string) error {
	f.passwords[name] = password
	return nil
}

func (f *fakeUsers) Authenticate(_ context.Context, name, password string) error {
	if f.passwords[name] != password || password == "" {
		return store.ErrInvalidCredentials
	}
	return nil
}

func (f *fakeUsers) Delete(ctx context.Context, name, password string) error {
	if err := f.Authenticate(ctx, name, password); err != nil {
		return err
	}
	delete(f.passwords, name)
	return nil
}

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                           { return nil }
func (stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return stubScreen{}, nil }
func (stubScreen) View(int, int) string                    { return "" }
func (stubScreen) Title() string                           { return "login" }

func newTestAccount(t *testing.T) (*AccountScreen, *fakeUsers, *state.State) {
	t.Helper()
	users := &fakeUsers{passwords: map[string]string{"ada": "s3cret"}}
	loc, err := i18n.New("en")
	if err != nil {
		t.Fatalf("load localizer: %v", err)
	}
	st := state.New(config.Default(), "", loc)
	st.User = "ada"

	return New(users, st, func() screen.Screen { return stubScreen{} }), users, st
}

func TestDeleteWithCorrectPassword(t *testing.T) {
	a, users, st := newTestAccount(t)
	a.password.SetValue("s3cret")

	_, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected the delete command")
	}
	_, cmd = a.Update(cmd())
	if cmd == nil {
		t.Fatal("expected a reset command after deletion")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Fatalf("expected ResetScreenMsg, got %T", cmd())
	}

	if _, exists := users.passwords["ada"]; exists {
		t.Error("account still present after deletion")
	}
	if st.User != "" {
		t.Error("state user must be cleared after deletion")
	}
}

func TestDeleteWithWrongPassword(t *testing.T) {
	a, users, st := newTestAccount(t)
	a.password.SetValue("nope")

	_, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	a.Update(cmd())

	if a.errMsg == "" {
		t.Error("expected an error message for a wrong password")
	}
	if _, exists := users.passwords["ada"]; !exists {
		t.Error("wrong password must not delete the account")
	}
	if st.User != "ada" {
		t.Error("user must stay signed in after a failed delete")
	}
}

func TestKeysIgnoredWhileBusy(t *testing.T) {
	a, _, _ := newTestAccount(t)
	a.busy = true

	_, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("keys must be ignored while a delete is in flight")
	}
}

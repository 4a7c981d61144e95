// Package account implements the delete-account confirmation screen.
// Deletion cascades to the user's suggestions and score history.
package account

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphwatch/internal/router"
	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/store"
	"github.com/abhisek/lymphwatch/internal/ui/components"
	"github.com/abhisek/lymphwatch/internal/ui/layout"
	"github.com/abhisek/lymphwatch/internal/ui/state"
	"github.com/abhisek/lymphwatch/internal/ui/theme"
)

type deleteDoneMsg struct {
	Err error
}

// AccountScreen confirms and performs account deletion.
type AccountScreen struct {
	users       store.UserRepo
	st          *state.State
	authFactory func() screen.Screen

	password components.TextInput
	busy     bool
	errMsg   string
}

var _ screen.Screen = (*AccountScreen)(nil)
var _ screen.KeyHintProvider = (*AccountScreen)(nil)

// New creates the delete-account screen. authFactory rebuilds the login
// screen shown once the account is gone.
func New(users store.UserRepo, st *state.State, authFactory func() screen.Screen) *AccountScreen {
	password := components.NewTextInput("", false, 64)
	password.Model.EchoMode = textinput.EchoPassword
	password.Model.Focus()
	return &AccountScreen{
		users:       users,
		st:          st,
		authFactory: authFactory,
		password:    password,
	}
}

func (a *AccountScreen) Init() tea.Cmd {
	return nil
}

func (a *AccountScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deleteDoneMsg:
		a.busy = false
		if msg.Err != nil {
			if errors.Is(msg.Err, store.ErrInvalidCredentials) {
				a.errMsg = a.st.Loc.Text("login_failed")
			} else {
				a.errMsg = msg.Err.Error()
			}
			return a, nil
		}
		a.st.User = ""
		next := a.authFactory()
		return a, func() tea.Msg {
			return router.ResetScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		if a.busy {
			return a, nil
		}
		if msg.String() == "enter" {
			a.busy = true
			a.errMsg = ""
			user := a.st.User
			pass := a.password.Value()
			return a, func() tea.Msg {
				return deleteDoneMsg{Err: a.users.Delete(context.Background(), user, pass)}
			}
		}
		var cmd tea.Cmd
		a.password, cmd = a.password.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *AccountScreen) View(width, height int) string {
	loc := a.st.Loc

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
		Render(loc.Text("delete_account")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Width(min(width-12, 56)).
		Render(loc.Text("delete_confirm")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(loc.Text("password")))
	b.WriteString("\n")
	b.WriteString(a.password.View())
	b.WriteString("\n")

	if a.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(a.errMsg))
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (a *AccountScreen) Title() string {
	return a.st.Loc.Text("delete_account")
}

func (a *AccountScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "delete"},
		{Key: "esc", Description: "cancel"},
	}
}

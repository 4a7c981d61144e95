// Package auth implements the login and registration screen. A user must
// be signed in before any symptom data is readable or writable.
package auth

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

type mode int

const (
	modeLogin mode = iota
	modeRegister
)

type authDoneMsg struct {
	Mode mode
	User string
	Err  error
}

// AuthScreen collects credentials and signs the user in.
type AuthScreen struct {
	users       store.UserRepo
	st          *state.State
	homeFactory func() screen.Screen

	mode     mode
	username components.TextInput
	password components.TextInput
	focus    int
	busy     bool
	notice   string
	noticeOK bool
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)

// New creates the auth screen. homeFactory builds the screen shown after
// a successful login.
func New(users store.UserRepo, st *state.State, homeFactory func() screen.Screen) *AuthScreen {
	username := components.NewTextInput("", false, 32)
	password := components.NewTextInput("", false, 64)
	password.Model.EchoMode = textinput.EchoPassword

	a := &AuthScreen{
		users:       users,
		st:          st,
		homeFactory: homeFactory,
		username:    username,
		password:    password,
	}
	a.username.Model.Focus()
	return a
}

func (a *AuthScreen) Init() tea.Cmd {
	return nil
}

func (a *AuthScreen) submit() tea.Cmd {
	m := a.mode
	name := strings.TrimSpace(a.username.Value())
	pass := a.password.Value()
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if m == modeLogin {
			err = a.users.Authenticate(ctx, name, pass)
		} else {
			err = a.users.Register(ctx, name, pass)
		}
		return authDoneMsg{Mode: m, User: name, Err: err}
	}
}

func (a *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		return a.handleDone(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *AuthScreen) handleDone(msg authDoneMsg) (screen.Screen, tea.Cmd) {
	a.busy = false
	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, store.ErrInvalidCredentials):
			if msg.Mode == modeLogin {
				a.notice = a.st.Loc.Text("login_failed")
			} else {
				a.notice = a.st.Loc.Text("register_blank")
			}
		case errors.Is(msg.Err, store.ErrUserExists):
			a.notice = a.st.Loc.Text("register_exists")
		default:
			a.notice = msg.Err.Error()
		}
		a.noticeOK = false
		return a, nil
	}

	if msg.Mode == modeRegister {
		a.mode = modeLogin
		a.notice = a.st.Loc.Text("register_ok")
		a.noticeOK = true
		a.password.SetValue("")
		return a, nil
	}

	a.st.User = msg.User
	home := a.homeFactory()
	return a, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (a *AuthScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if a.busy {
		return a, nil
	}

	switch msg.String() {
	case "tab", "down", "shift+tab", "up":
		if a.focus == 0 {
			a.focus = 1
			a.username.Model.Blur()
			a.password.Model.Focus()
		} else {
			a.focus = 0
			a.password.Model.Blur()
			a.username.Model.Focus()
		}
		return a, nil
	case "enter":
		if a.focus == 0 {
			a.focus = 1
			a.username.Model.Blur()
			a.password.Model.Focus()
			return a, nil
		}
		a.busy = true
		a.notice = ""
		return a, a.submit()
	case "ctrl+t":
		if a.mode == modeLogin {
			a.mode = modeRegister
		} else {
			a.mode = modeLogin
		}
		a.notice = ""
		return a, nil
	}

	var cmd tea.Cmd
	if a.focus == 0 {
		a.username, cmd = a.username.Update(msg)
	} else {
		a.password, cmd = a.password.Update(msg)
	}
	return a, cmd
}

func (a *AuthScreen) View(width, height int) string {
	loc := a.st.Loc

	tab := func(m mode, key string) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if a.mode == m {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		return style.Render(loc.Text(key))
	}

	var b strings.Builder
	b.WriteString(tab(modeLogin, "login") + "   " + tab(modeRegister, "register"))
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(theme.Text)
	b.WriteString(label.Render(loc.Text("username")))
	b.WriteString("\n")
	b.WriteString(a.username.View())
	b.WriteString("\n\n")
	b.WriteString(label.Render(loc.Text("password")))
	b.WriteString("\n")
	b.WriteString(a.password.View())
	b.WriteString("\n\n")

	if a.notice != "" {
		style := lipgloss.NewStyle().Foreground(theme.Error)
		if a.noticeOK {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(style.Width(min(width-8, 60)).Render(a.notice))
		b.WriteString("\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (a *AuthScreen) Title() string {
	if a.mode == modeRegister {
		return a.st.Loc.Text("register")
	}
	return a.st.Loc.Text("login")
}

func (a *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "tab", Description: "field"},
		{Key: "enter", Description: "submit"},
		{Key: "^t", Description: "switch"},
	}
}

// Package home implements the main menu shown after login.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphwatch/internal/advice"
	"github.com/abhisek/lymphwatch/internal/router"
	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/screens/about"
	"github.com/abhisek/lymphwatch/internal/screens/account"
	"github.com/abhisek/lymphwatch/internal/screens/form"
	"github.com/abhisek/lymphwatch/internal/screens/guide"
	"github.com/abhisek/lymphwatch/internal/screens/language"
	"github.com/abhisek/lymphwatch/internal/screens/trends"
	"github.com/abhisek/lymphwatch/internal/session"
	"github.com/abhisek/lymphwatch/internal/store"
	"github.com/abhisek/lymphwatch/internal/ui/components"
	"github.com/abhisek/lymphwatch/internal/ui/state"
	"github.com/abhisek/lymphwatch/internal/ui/theme"
)

type statsMsg struct {
	Assessments int
}

// HomeScreen is the signed-in main menu.
type HomeScreen struct {
	st      *state.State
	records store.RecordRepo

	menu        components.Menu
	assessments int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home menu. authFactory rebuilds the login screen for
// the logout and delete-account paths.
func New(orch *session.Orchestrator, advisor *advice.Service, db *store.Store, st *state.State, authFactory func() screen.Screen) *HomeScreen {
	loc := st.Loc

	// rebuild recreates this menu, e.g. after a language change.
	rebuild := func() screen.Screen {
		return New(orch, advisor, db, st, authFactory)
	}

	items := []components.MenuItem{
		{Label: loc.Text("begin_detection"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: form.New(orch, advisor, st)}
			}
		}},
		{Label: loc.Text("score_history"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trends.New(db.Records(), st)}
			}
		}},
		{Label: loc.Text("visualized_diagnosis"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: guide.New(st)}
			}
		}},
		{Label: loc.Text("language"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: language.New(st, rebuild)}
			}
		}},
		{Label: loc.Text("about"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: about.New(st)}
			}
		}},
		{Label: loc.Text("delete_account"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: account.New(db.Users(), st, authFactory)}
			}
		}},
		{Label: loc.Text("logout"), Action: func() tea.Cmd {
			st.User = ""
			next := authFactory()
			return func() tea.Msg {
				return router.ResetScreenMsg{Screen: next}
			}
		}},
		{Label: loc.Text("exit"), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		st:      st,
		records: db.Records(),
		menu:    components.NewMenu(items),
	}
}

// Init loads the assessment count shown beside the menu.
func (h *HomeScreen) Init() tea.Cmd {
	user := h.st.User
	return func() tea.Msg {
		history, err := h.records.LoadHistory(context.Background(), user)
		if err != nil {
			return statsMsg{}
		}
		return statsMsg{Assessments: len(history)}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		h.assessments = msg.Assessments
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	loc := h.st.Loc

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(loc.Text("title")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		h.st.User + "  ·  " + loc.Textf("last_n_times", h.assessments)))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (h *HomeScreen) Title() string {
	return h.st.Loc.Text("title")
}

// Package app wires the services into the Bubble Tea program and owns
// the root model: window sizing, global keys, and the header/footer
// frame around the screen stack.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/lymphwatch/internal/advice"
	"github.com/abhisek/lymphwatch/internal/router"
	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/screens/auth"
	"github.com/abhisek/lymphwatch/internal/screens/home"
	"github.com/abhisek/lymphwatch/internal/screens/welcome"
	"github.com/abhisek/lymphwatch/internal/session"
	"github.com/abhisek/lymphwatch/internal/store"
	"github.com/abhisek/lymphwatch/internal/ui/layout"
	"github.com/abhisek/lymphwatch/internal/ui/state"
)

// Options carries the wired services for one program run.
type Options struct {
	Store        *store.Store
	Orchestrator *session.Orchestrator
	Advisor      *advice.Service
	State        *state.State
	Logger       *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel builds the screen factories and seeds the stack with the
// welcome splash.
func newAppModel(opts Options) AppModel {
	var authFactory func() screen.Screen
	authFactory = func() screen.Screen {
		return auth.New(opts.Store.Users(), opts.State, func() screen.Screen {
			return home.New(opts.Orchestrator, opts.Advisor, opts.Store, opts.State, authFactory)
		})
	}

	welcomeScreen := welcome.New(opts.State, authFactory)
	return AppModel{
		opts:   opts,
		router: router.New(welcomeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.opts.State.User, m.opts.State.Loc.Tag().String(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "esc", Description: "back"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑/↓", Description: "navigate"},
			{Key: "enter", Description: "select"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "^c", Description: "quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

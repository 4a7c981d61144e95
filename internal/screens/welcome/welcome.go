package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphwatch/internal/router"
	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/ui/state"
	"github.com/abhisek/lymphwatch/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
)

// ribbonArt is the awareness ribbon shown on startup.
const ribbonArt = `    ,----.
   /      \
  |        |
  |        |
   \      /
    )    (
   /  ()  \
  /  /  \  \
 /  /    \  \
'--'      '--'`

type tickMsg time.Time

// WelcomeScreen shows a short splash before transitioning to login.
type WelcomeScreen struct {
	st           *state.State
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// nextFactory once the animation has played.
func New(st *state.State, nextFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{st: st, nextFactory: nextFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed += tickInterval
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Any key moves on once the banner is visible.
		if w.elapsed >= phase2End {
			return w, w.transition()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	ribbon := lipgloss.NewStyle().Foreground(theme.Accent).Render(ribbonArt)

	// Phase 2+: a glint blinking beside the ribbon.
	if w.elapsed >= phase1End && w.tickCount%8 < 4 {
		lines := strings.Split(ribbon, "\n")
		glint := lipgloss.NewStyle().Foreground(theme.Primary).Render("✦")
		lines[0] = glint + " " + lines[0]
		ribbon = strings.Join(lines, "\n")
	}
	sections = append(sections, ribbon)

	// Phase 3+: banner, tagline, and the continue hint.
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(w.st.Loc.Text("title"))
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(w.st.Loc.Text("press_any_key"))
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

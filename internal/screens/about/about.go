// Package about implements the about screen.
package about

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/ui/layout"
	"github.com/abhisek/lymphwatch/internal/ui/state"
	"github.com/abhisek/lymphwatch/internal/ui/theme"
)

// AboutScreen shows what the tool is and is not.
type AboutScreen struct {
	st *state.State
}

var _ screen.Screen = (*AboutScreen)(nil)
var _ screen.KeyHintProvider = (*AboutScreen)(nil)

// New creates the about screen.
func New(st *state.State) *AboutScreen {
	return &AboutScreen{st: st}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	loc := a.st.Loc

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(loc.Text("title")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-12, 64)).
		Render(loc.Text("about_text")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-12, 64)).
		Render(loc.Text("instructions")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(width-12, 64)).
		Render(loc.Text("recommendation")))

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (a *AboutScreen) Title() string {
	return a.st.Loc.Text("about")
}

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "esc", Description: "back"},
	}
}

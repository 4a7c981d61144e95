// Package guide implements the visualized-diagnosis screen: the trained
// model's feature-importance table as horizontal bars.
package guide

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphwatch/internal/classifier"
	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/ui/layout"
	"github.com/abhisek/lymphwatch/internal/ui/state"
	"github.com/abhisek/lymphwatch/internal/ui/theme"
)

// GuideScreen renders the feature-importance table.
type GuideScreen struct {
	st  *state.State
	top int
}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.KeyHintProvider = (*GuideScreen)(nil)

// New creates the guide screen.
func New(st *state.State) *GuideScreen {
	return &GuideScreen{st: st}
}

func (g *GuideScreen) Init() tea.Cmd {
	return nil
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if g.top > 0 {
				g.top--
			}
		case "down", "j":
			if g.top < len(classifier.Importances())-1 {
				g.top++
			}
		}
	}
	return g, nil
}

func (g *GuideScreen) View(width, height int) string {
	loc := g.st.Loc
	entries := classifier.Importances()

	var b strings.Builder
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(loc.Text("important_factors")))
	b.WriteString("\n\n")

	// Label column sized to the longest localized label.
	labelW := 0
	for _, e := range entries {
		if w := lipgloss.Width(loc.Text(e.LabelKey)); w > labelW {
			labelW = w
		}
	}

	barMax := width - labelW - 16
	if barMax < 10 {
		barMax = 10
	}

	// Bars are scaled to the top weight so the smaller entries stay
	// visible.
	topWeight := entries[0].Weight

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	end := g.top + visible
	if end > len(entries) {
		end = len(entries)
	}

	for _, e := range entries[g.top:end] {
		filled := int(e.Weight / topWeight * float64(barMax))
		if filled < 1 {
			filled = 1
		}
		label := fmt.Sprintf("%-*s", labelW, loc.Text(e.LabelKey))
		bar := lipgloss.NewStyle().Foreground(theme.Primary).
			Render(strings.Repeat("█", filled))
		pct := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %.1f%%", e.Weight*100))
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(label) + " " + bar + pct)
		b.WriteString("\n")
	}

	return b.String()
}

func (g *GuideScreen) Title() string {
	return g.st.Loc.Text("visualized_diagnosis")
}

func (g *GuideScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "scroll"},
		{Key: "esc", Description: "back"},
	}
}

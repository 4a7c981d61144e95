package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphwatch/internal/ui/theme"
)

// Selector is a horizontal single-choice selector for ordinal answers
// (severity scales, yes/no). The chosen index maps directly onto the
// answer ordinal.
type Selector struct {
	Options []string
	// Selected is the highlighted index, or -1 while unanswered.
	Selected int
	Focused  bool
}

// NewSelector creates a selector with nothing chosen yet.
func NewSelector(options []string) Selector {
	return Selector{Options: options, Selected: -1}
}

// Update handles left/right navigation and numeric shortcuts.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if s.Selected > 0 {
			s.Selected--
		} else if s.Selected < 0 {
			s.Selected = 0
		}
	case "right", "l":
		if s.Selected < len(s.Options)-1 {
			s.Selected++
		}
	default:
		// Digit shortcuts pick the ordinal directly.
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			if idx := int(key[0] - '0'); idx < len(s.Options) {
				s.Selected = idx
			}
		}
	}

	return s, nil
}

// View renders the options side by side, highlighting the chosen one.
func (s Selector) View() string {
	out := ""
	for i, opt := range s.Options {
		label := fmt.Sprintf("[%d] %s", i, opt)
		var style lipgloss.Style
		switch {
		case i == s.Selected && s.Focused:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case i == s.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		case s.Focused:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		default:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		if i > 0 {
			out += "  "
		}
		out += style.Render(label)
	}
	return out
}

// Answered reports whether an option has been chosen.
func (s Selector) Answered() bool {
	return s.Selected >= 0
}

// Value returns the chosen ordinal as the stored answer string, or ""
// while unanswered.
func (s Selector) Value() string {
	if s.Selected < 0 {
		return ""
	}
	return fmt.Sprintf("%d", s.Selected)
}

// SetValue selects the option matching a stored answer string. Unknown
// or blank values clear the selection.
func (s *Selector) SetValue(value string) {
	s.Selected = -1
	if len(value) == 1 && value[0] >= '0' && value[0] <= '9' {
		if idx := int(value[0] - '0'); idx < len(s.Options) {
			s.Selected = idx
		}
	}
}

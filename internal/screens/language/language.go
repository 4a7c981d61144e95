// Package language implements the interface-language picker. Choosing a
// language persists it and rebuilds the UI so every label re-renders.
package language

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphwatch/internal/i18n"
	"github.com/abhisek/lymphwatch/internal/router"
	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/ui/layout"
	"github.com/abhisek/lymphwatch/internal/ui/state"
	"github.com/abhisek/lymphwatch/internal/ui/theme"
)

// displayNames maps supported tags to their self-names.
var displayNames = map[string]string{
	"en":      "English",
	"zh-Hans": "简体中文",
	"es":      "Español",
}

// LanguageScreen lists the supported languages.
type LanguageScreen struct {
	st          *state.State
	homeFactory func() screen.Screen

	tags     []string
	selected int
	errMsg   string
}

var _ screen.Screen = (*LanguageScreen)(nil)
var _ screen.KeyHintProvider = (*LanguageScreen)(nil)

// New creates the language picker. homeFactory rebuilds the home screen
// under the new language.
func New(st *state.State, homeFactory func() screen.Screen) *LanguageScreen {
	tags := i18n.Available()
	selected := 0
	current := st.Loc.Tag().String()
	for i, tag := range tags {
		if tag == current {
			selected = i
			break
		}
	}
	return &LanguageScreen{st: st, homeFactory: homeFactory, tags: tags, selected: selected}
}

func (l *LanguageScreen) Init() tea.Cmd {
	return nil
}

func (l *LanguageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.selected > 0 {
			l.selected--
		}
	case "down", "j":
		if l.selected < len(l.tags)-1 {
			l.selected++
		}
	case "enter":
		if err := l.st.SetLanguage(l.tags[l.selected]); err != nil {
			l.errMsg = err.Error()
			return l, nil
		}
		home := l.homeFactory()
		return l, func() tea.Msg {
			return router.ResetScreenMsg{Screen: home}
		}
	}
	return l, nil
}

func (l *LanguageScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(l.st.Loc.Text("language")))
	b.WriteString("\n\n")

	current := l.st.Loc.Tag().String()
	for i, tag := range l.tags {
		name := displayNames[tag]
		if name == "" {
			name = tag
		}
		line := "   " + name
		if i == l.selected {
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" ▸ " + name)
		}
		if tag == current {
			line += lipgloss.NewStyle().Foreground(theme.Success).Render(" ✓")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if l.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(l.errMsg))
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (l *LanguageScreen) Title() string {
	return l.st.Loc.Text("language")
}

func (l *LanguageScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "select"},
		{Key: "enter", Description: "apply"},
		{Key: "esc", Description: "back"},
	}
}

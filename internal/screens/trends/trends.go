// Package trends implements the score-history screen: past risk scores
// as a bar chart over selectable ranges.
package trends

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/store"
	"github.com/abhisek/lymphwatch/internal/ui/layout"
	"github.com/abhisek/lymphwatch/internal/ui/state"
	"github.com/abhisek/lymphwatch/internal/ui/theme"
)

// ranges are the selectable history windows; 0 means everything.
var ranges = []int{5, 10, 20, 0}

type historyLoadedMsg struct {
	Scores []float64
	Err    error
}

// TrendsScreen plots the user's score history.
type TrendsScreen struct {
	records store.RecordRepo
	st      *state.State

	scores   []float64
	loading  bool
	errMsg   string
	rangeIdx int
}

var _ screen.Screen = (*TrendsScreen)(nil)
var _ screen.KeyHintProvider = (*TrendsScreen)(nil)

// New creates the trends screen.
func New(records store.RecordRepo, st *state.State) *TrendsScreen {
	return &TrendsScreen{records: records, st: st, loading: true}
}

func (t *TrendsScreen) Init() tea.Cmd {
	user := t.st.User
	return func() tea.Msg {
		scores, err := t.records.LoadHistory(context.Background(), user)
		return historyLoadedMsg{Scores: scores, Err: err}
	}
}

func (t *TrendsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		t.loading = false
		if msg.Err != nil {
			t.errMsg = msg.Err.Error()
			return t, nil
		}
		t.scores = msg.Scores
		return t, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if t.rangeIdx > 0 {
				t.rangeIdx--
			}
		case "right", "l":
			if t.rangeIdx < len(ranges)-1 {
				t.rangeIdx++
			}
		}
	}
	return t, nil
}

// window returns the scores inside the selected range, oldest first.
func (t *TrendsScreen) window() []float64 {
	n := ranges[t.rangeIdx]
	if n == 0 || n >= len(t.scores) {
		return t.scores
	}
	return t.scores[len(t.scores)-n:]
}

func (t *TrendsScreen) View(width, height int) string {
	loc := t.st.Loc

	if t.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("..."))
	}
	if t.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(t.errMsg))
	}
	if len(t.scores) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(loc.Text("verdict_first_low")))
	}

	var b strings.Builder

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(loc.Text("risk_score_history")))
	b.WriteString("\n\n")

	// Range selector line.
	var tabs []string
	for i, n := range ranges {
		label := loc.Text("overall")
		if n > 0 {
			label = loc.Textf("last_n_times", n)
		}
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == t.rangeIdx {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(label))
	}
	b.WriteString("  " + strings.Join(tabs, "   "))
	b.WriteString("\n\n")

	scores := t.window()
	offset := len(t.scores) - len(scores)

	barMax := width - 24
	if barMax < 10 {
		barMax = 10
	}

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%-6s %s", loc.Text("test_number"), loc.Text("score"))))
	b.WriteString("\n")

	for i, score := range scores {
		filled := int(score / 100 * float64(barMax))
		if filled < 1 {
			filled = 1
		}
		bar := lipgloss.NewStyle().Foreground(barColor(score)).
			Render(strings.Repeat("█", filled))
		line := fmt.Sprintf("  %-4d %s %.1f", offset+i+1, bar, score)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// barColor maps a score onto the risk band palette. The thresholds
// mirror the weighted policy's class anchors at 0, 50, and 100.
func barColor(score float64) color.Color {
	switch {
	case score < 25:
		return theme.Success
	case score < 75:
		return theme.Warning
	}
	return theme.Error
}

func (t *TrendsScreen) Title() string {
	return t.st.Loc.Text("score_history")
}

func (t *TrendsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "range"},
		{Key: "esc", Description: "back"},
	}
}

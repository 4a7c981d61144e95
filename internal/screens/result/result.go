// Package result implements the detection-result screen: risk class,
// score gauge, trend verdict, and optional generated suggestions.
package result

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphwatch/internal/advice"
	"github.com/abhisek/lymphwatch/internal/risk"
	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/session"
	"github.com/abhisek/lymphwatch/internal/ui/components"
	"github.com/abhisek/lymphwatch/internal/ui/layout"
	"github.com/abhisek/lymphwatch/internal/ui/state"
	"github.com/abhisek/lymphwatch/internal/ui/theme"
)

type persistedMsg struct {
	Err error
}

type adviceTickMsg struct{}

// ResultScreen shows one completed submission.
type ResultScreen struct {
	orch    *session.Orchestrator
	advisor *advice.Service
	st      *state.State
	res     *session.Result

	persistErr error
	advice     *advice.Advice
	waiting    bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the result screen for a scored submission.
func New(orch *session.Orchestrator, advisor *advice.Service, st *state.State, res *session.Result) *ResultScreen {
	return &ResultScreen{orch: orch, advisor: advisor, st: st, res: res}
}

// Init persists the score and, when a provider is configured, kicks off
// suggestion generation. Persisting here rather than in View keeps
// renders side-effect free; the orchestrator's one-shot permit protects
// against double appends regardless.
func (r *ResultScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{r.persist()}
	if r.advisor != nil && r.advisor.Available() {
		r.waiting = true
		r.advisor.RequestAdvice(context.Background(), advice.Input{
			Class:   r.res.Dominant,
			Score:   r.res.Score,
			Verdict: r.res.Verdict,
			Vector:  r.res.Vector,
		})
		cmds = append(cmds, adviceTick())
	}
	return tea.Batch(cmds...)
}

func (r *ResultScreen) persist() tea.Cmd {
	user := r.st.User
	return func() tea.Msg {
		_, err := r.orch.PersistScore(context.Background(), user)
		return persistedMsg{Err: err}
	}
}

func adviceTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg {
		return adviceTickMsg{}
	})
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case persistedMsg:
		r.persistErr = msg.Err
		return r, nil

	case adviceTickMsg:
		if !r.waiting {
			return r, nil
		}
		if adv, ready := r.advisor.ConsumeAdvice(); ready {
			r.advice = adv
			r.waiting = false
			return r, nil
		}
		return r, adviceTick()
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	loc := r.st.Loc
	var b strings.Builder
	b.WriteString("\n")

	classText := loc.Text(r.res.Dominant.MessageKey())
	b.WriteString(center(width, classStyle(r.res.Dominant).Render(classText)))
	b.WriteString("\n\n")

	b.WriteString(center(width, loc.Textf("predicted_risk", classText)))
	b.WriteString("\n\n")

	gauge := components.ProgressBar{
		Label:   loc.Text("risk_score"),
		Percent: r.res.Score / 100,
		Width:   min(width-8, 64),
		Fill:    bandColor(r.res.Dominant),
	}
	score := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %.1f", r.res.Score))
	b.WriteString(center(width, gauge.View()+score))
	b.WriteString("\n\n")

	verdict := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 72)).
		Render(loc.Text(r.res.Verdict.MessageKey()))
	b.WriteString(center(width, verdict))
	b.WriteString("\n\n")

	b.WriteString(r.renderAdvice(width))

	disclaimer := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(min(width-8, 72)).
		Render(loc.Text("recommendation"))
	b.WriteString(center(width, disclaimer))
	b.WriteString("\n")

	if r.persistErr != nil {
		b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Error).Render(r.persistErr.Error())))
		b.WriteString("\n")
	}

	return b.String()
}

// renderAdvice shows generated suggestions, the waiting line, or the
// static per-class guidance when no provider is configured.
func (r *ResultScreen) renderAdvice(width int) string {
	loc := r.st.Loc
	wrap := lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-8, 72))

	if r.waiting {
		line := lipgloss.NewStyle().Foreground(theme.TextDim).Render(loc.Text("advice_pending"))
		return center(width, line) + "\n\n"
	}

	if r.advice == nil {
		key := "diag_low_risk"
		switch r.res.Dominant {
		case risk.ClassMild:
			key = "diag_mild"
		case risk.ClassModerateSevere:
			key = "diag_moderate_severe"
		}
		return center(width, wrap.Render(loc.Text(key))) + "\n\n"
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(loc.Text("advice_title"))
	b.WriteString(center(width, title))
	b.WriteString("\n")
	b.WriteString(center(width, wrap.Render(r.advice.Summary)))
	b.WriteString("\n")
	for _, rec := range r.advice.Recommendations {
		b.WriteString(center(width, wrap.Render("• "+rec)))
		b.WriteString("\n")
	}
	if r.advice.SeeClinician {
		b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Warning).Render(loc.Text("see_clinician"))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (r *ResultScreen) Title() string {
	return r.st.Loc.Text("detection_result")
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "esc", Description: "back"},
	}
}

func classStyle(c risk.Class) lipgloss.Style {
	switch c {
	case risk.ClassLowRisk:
		return theme.RiskLow
	case risk.ClassMild:
		return theme.RiskMild
	}
	return theme.RiskHigh
}

func bandColor(c risk.Class) color.Color {
	switch c {
	case risk.ClassLowRisk:
		return theme.Success
	case risk.ClassMild:
		return theme.Warning
	}
	return theme.Error
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

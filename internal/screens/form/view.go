package form

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphwatch/internal/intake"
	"github.com/abhisek/lymphwatch/internal/ui/components"
	"github.com/abhisek/lymphwatch/internal/ui/theme"
)

func (f *FormScreen) View(width, height int) string {
	var b strings.Builder

	// Progress line: answered count over total.
	done := f.answered()
	bar := components.NewProgressBar(
		progressLabel(done, len(f.rows)),
		float64(done)/float64(len(f.rows)),
		false,
		width-8,
	)
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n")

	if f.notice != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if f.noticeErr {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString("  " + style.Render(f.notice))
		b.WriteString("\n")
	}
	if f.confirming {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Warning).Render(f.st.Loc.Text("reset_confirm")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Window the questions: two lines per row plus a hint line on the
	// focused one.
	visible := (height - 7) / 2
	if visible < 3 {
		visible = 3
	}
	f.scrollTo(visible)

	end := f.top + visible
	if end > len(f.rows) {
		end = len(f.rows)
	}
	for i := f.top; i < end; i++ {
		b.WriteString(f.renderRow(i, width))
	}

	if end < len(f.rows) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ···"))
		b.WriteString("\n")
	}

	return b.String()
}

// scrollTo keeps the focused row inside the visible window.
func (f *FormScreen) scrollTo(visible int) {
	if f.focus < f.top {
		f.top = f.focus
	}
	if f.focus >= f.top+visible {
		f.top = f.focus - visible + 1
	}
	if f.top < 0 {
		f.top = 0
	}
}

func (f *FormScreen) renderRow(i, width int) string {
	r := &f.rows[i]
	focused := i == f.focus

	marker := "  "
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if focused {
		marker = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ")
		labelStyle = labelStyle.Bold(true)
	}

	label := f.st.Loc.Text(r.q.Key)
	line := marker + labelStyle.Render(label)
	if i < intake.RequiredCount {
		line += lipgloss.NewStyle().Foreground(theme.Accent).Render(" *")
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")

	if r.q.Kind == intake.KindNumber {
		b.WriteString("    " + r.text.View())
	} else {
		b.WriteString("    " + r.sel.View())
	}
	b.WriteString("\n")

	if focused {
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(max(width-6, 10)).
			Render(f.st.Loc.Text(r.q.HintKey))
		b.WriteString("    " + hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Package form implements the symptom questionnaire screen: all 35
// questions on one scrollable page, with draft save/restore and
// submission into the scoring pipeline.
package form

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lymphwatch/internal/advice"
	"github.com/abhisek/lymphwatch/internal/features"
	"github.com/abhisek/lymphwatch/internal/intake"
	"github.com/abhisek/lymphwatch/internal/router"
	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/screens/result"
	"github.com/abhisek/lymphwatch/internal/session"
	"github.com/abhisek/lymphwatch/internal/ui/components"
	"github.com/abhisek/lymphwatch/internal/ui/layout"
	"github.com/abhisek/lymphwatch/internal/ui/state"
)

// row pairs a question with its input widget. Kind decides which widget
// is live.
type row struct {
	q    intake.Question
	text components.TextInput
	sel  components.Selector
}

type draftLoadedMsg struct {
	Rec *intake.Record
	Err error
}

type draftSavedMsg struct {
	Err error
}

type submitDoneMsg struct {
	Res *session.Result
	Err error
}

// FormScreen is the symptom report form.
type FormScreen struct {
	orch    *session.Orchestrator
	advisor *advice.Service
	st      *state.State

	rows  []row
	focus int
	top   int

	notice     string
	noticeErr  bool
	confirming bool
	submitting bool
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the form screen. The draft, if any, is loaded in Init.
func New(orch *session.Orchestrator, advisor *advice.Service, st *state.State) *FormScreen {
	questions := intake.Questions()
	rows := make([]row, len(questions))
	for i, q := range questions {
		rows[i] = row{q: q}
		switch q.Kind {
		case intake.KindNumber:
			rows[i].text = components.NewTextInput("", true, 8)
		case intake.KindSeverity:
			rows[i].sel = components.NewSelector(localize(st, intake.SeverityLabelKeys()))
		case intake.KindBinary:
			rows[i].sel = components.NewSelector(localize(st, intake.BinaryLabelKeys()))
		}
	}

	f := &FormScreen{orch: orch, advisor: advisor, st: st, rows: rows}
	f.setFocus(0)
	return f
}

func localize(st *state.State, keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = st.Loc.Text(k)
	}
	return out
}

func (f *FormScreen) Init() tea.Cmd {
	return f.loadDraft()
}

func (f *FormScreen) loadDraft() tea.Cmd {
	user := f.st.User
	return func() tea.Msg {
		rec, err := f.orch.LoadDraft(context.Background(), user)
		return draftLoadedMsg{Rec: rec, Err: err}
	}
}

func (f *FormScreen) saveDraft() tea.Cmd {
	user := f.st.User
	rec := f.collect()
	return func() tea.Msg {
		return draftSavedMsg{Err: f.orch.SaveDraft(context.Background(), user, rec)}
	}
}

func (f *FormScreen) submit() tea.Cmd {
	user := f.st.User
	rec := f.collect()
	return func() tea.Msg {
		res, err := f.orch.Submit(context.Background(), user, rec)
		return submitDoneMsg{Res: res, Err: err}
	}
}

// collect snapshots the widgets into a record. Unanswered rows stay
// empty; Validate decides what that means per question.
func (f *FormScreen) collect() *intake.Record {
	rec := intake.NewRecord()
	for i := range f.rows {
		r := &f.rows[i]
		var v string
		if r.q.Kind == intake.KindNumber {
			v = r.text.Value()
		} else {
			v = r.sel.Value()
		}
		_ = rec.Set(r.q.Key, v)
	}
	return rec
}

func (f *FormScreen) prefill(rec *intake.Record) {
	for i := range f.rows {
		r := &f.rows[i]
		v := rec.Get(r.q.Key)
		if v == intake.Unanswered {
			v = ""
		}
		if r.q.Kind == intake.KindNumber {
			r.text.SetValue(v)
		} else {
			r.sel.SetValue(v)
		}
	}
}

func (f *FormScreen) reset() {
	for i := range f.rows {
		r := &f.rows[i]
		if r.q.Kind == intake.KindNumber {
			r.text.SetValue("")
			r.text.ClearMark()
		} else {
			r.sel.Selected = -1
		}
	}
	f.setFocus(0)
	f.top = 0
}

func (f *FormScreen) setFocus(idx int) {
	if idx < 0 || idx >= len(f.rows) {
		return
	}
	prev := &f.rows[f.focus]
	if prev.q.Kind == intake.KindNumber {
		prev.text.Model.Blur()
	} else {
		prev.sel.Focused = false
	}

	f.focus = idx
	cur := &f.rows[idx]
	if cur.q.Kind == intake.KindNumber {
		cur.text.Model.Focus()
	} else {
		cur.sel.Focused = true
	}
}

// jumpTo moves focus to a question index reported by a validation or
// encoding error.
func (f *FormScreen) jumpTo(idx int) {
	f.setFocus(idx)
	f.top = idx
}

func (f *FormScreen) positionOf(key string) int {
	for i := range f.rows {
		if f.rows[i].q.Key == key {
			return i
		}
	}
	return 0
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case draftLoadedMsg:
		if msg.Err == nil && msg.Rec != nil {
			f.prefill(msg.Rec)
		}
		return f, nil

	case draftSavedMsg:
		if msg.Err != nil {
			f.notice, f.noticeErr = msg.Err.Error(), true
		} else {
			f.notice, f.noticeErr = f.st.Loc.Text("saved_body"), false
		}
		return f, nil

	case submitDoneMsg:
		return f.handleSubmitDone(msg)

	case tea.KeyMsg:
		return f.handleKey(msg)
	}
	return f, nil
}

func (f *FormScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	f.submitting = false
	if msg.Err != nil {
		var inc *intake.IncompleteDataError
		var dom *features.DomainError
		switch {
		case errors.As(msg.Err, &inc):
			f.notice = f.st.Loc.Text("incomplete_body")
			f.jumpTo(inc.Position)
		case errors.As(msg.Err, &dom):
			f.notice = f.st.Loc.Text("domain_error_body")
			f.jumpTo(f.positionOf(dom.Field))
		default:
			f.notice = f.st.Loc.Text("classifier_error_body")
		}
		f.noticeErr = true
		return f, nil
	}

	res := msg.Res
	return f, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: result.New(f.orch, f.advisor, f.st, res),
		}
	}
}

func (f *FormScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if f.submitting {
		return f, nil
	}

	if f.confirming {
		switch msg.String() {
		case "y", "Y":
			f.confirming = false
			f.reset()
			f.notice, f.noticeErr = "", false
		case "n", "N", "esc":
			f.confirming = false
		}
		return f, nil
	}

	switch msg.String() {
	case "up", "shift+tab":
		f.notice = ""
		f.setFocus(f.focus - 1)
		return f, nil
	case "down", "tab":
		f.notice = ""
		f.setFocus(f.focus + 1)
		return f, nil
	case "enter":
		f.notice = ""
		if f.focus == len(f.rows)-1 {
			f.submitting = true
			return f, f.submit()
		}
		f.setFocus(f.focus + 1)
		return f, nil
	case "ctrl+s":
		return f, f.saveDraft()
	case "ctrl+d":
		f.submitting = true
		return f, f.submit()
	case "ctrl+r":
		f.confirming = true
		return f, nil
	}

	// Forward everything else to the focused widget.
	r := &f.rows[f.focus]
	var cmd tea.Cmd
	if r.q.Kind == intake.KindNumber {
		r.text, cmd = r.text.Update(msg)
	} else {
		r.sel, cmd = r.sel.Update(msg)
	}
	return f, cmd
}

func (f *FormScreen) answered() int {
	n := 0
	for i := range f.rows {
		r := &f.rows[i]
		if r.q.Kind == intake.KindNumber {
			if r.text.Value() != "" {
				n++
			}
		} else if r.sel.Answered() {
			n++
		}
	}
	return n
}

func (f *FormScreen) Title() string {
	return f.st.Loc.Text("detection_page")
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	if f.confirming {
		return []layout.KeyHint{
			{Key: "y", Description: "confirm"},
			{Key: "n", Description: "cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "question"},
		{Key: "enter", Description: "next"},
		{Key: "^s", Description: "save"},
		{Key: "^d", Description: "submit"},
		{Key: "^r", Description: "reset"},
		{Key: "esc", Description: "back"},
	}
}

func progressLabel(done, total int) string {
	return fmt.Sprintf("%d/%d", done, total)
}

package language

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lymphwatch/internal/config"
	"github.com/abhisek/lymphwatch/internal/i18n"
	"github.com/abhisek/lymphwatch/internal/router"
	"github.com/abhisek/lymphwatch/internal/screen"
	"github.com/abhisek/lymphwatch/internal/ui/state"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                           { return nil }
func (stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return stubScreen{}, nil }
func (stubScreen) View(int, int) string                    { return "" }
func (stubScreen) Title() string                           { return "home" }

func newTestLanguage(t *testing.T, cfgPath string) (*LanguageScreen, *state.State, *int) {
	t.Helper()
	loc, err := i18n.New("en")
	if err != nil {
		t.Fatalf("load localizer: %v", err)
	}
	st := state.New(config.Default(), cfgPath, loc)

	calls := 0
	factory := func() screen.Screen {
		calls++
		return stubScreen{}
	}
	return New(st, factory), st, &calls
}

func indexOf(tags []string, tag string) int {
	for i, t := range tags {
		if t == tag {
			return i
		}
	}
	return -1
}

func TestSelectionStartsOnCurrentLanguage(t *testing.T) {
	l, _, _ := newTestLanguage(t, "")
	if l.tags[l.selected] != "en" {
		t.Errorf("selected = %q, want en", l.tags[l.selected])
	}
}

func TestApplySwapsLocalizerAndResets(t *testing.T) {
	l, st, calls := newTestLanguage(t, "")

	idx := indexOf(l.tags, "zh-Hans")
	if idx < 0 {
		t.Fatal("zh-Hans catalog missing")
	}
	l.selected = idx

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a reset command after applying a language")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Fatalf("expected ResetScreenMsg, got %T", cmd())
	}
	if st.Loc.Tag().String() != "zh-Hans" {
		t.Errorf("localizer tag = %q, want zh-Hans", st.Loc.Tag().String())
	}
	if *calls != 1 {
		t.Errorf("home factory called %d times, want 1", *calls)
	}
}

func TestApplyWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	l, _, _ := newTestLanguage(t, path)

	l.selected = indexOf(l.tags, "es")
	l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(data), `"language": "es"`) {
		t.Error("expected the chosen language in the saved config")
	}
}

func TestArrowKeysClamp(t *testing.T) {
	l, _, _ := newTestLanguage(t, "")

	for range 10 {
		l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if l.selected != len(l.tags)-1 {
		t.Errorf("selected = %d, want clamped at %d", l.selected, len(l.tags)-1)
	}

	for range 10 {
		l.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	if l.selected != 0 {
		t.Errorf("selected = %d, want clamped at 0", l.selected)
	}
}

func TestViewMarksCurrentLanguage(t *testing.T) {
	l, _, _ := newTestLanguage(t, "")
	if !strings.Contains(l.View(80, 24), "✓") {
		t.Error("expected the current-language mark in view")
	}
}

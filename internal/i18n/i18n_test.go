package i18n

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/abhisek/lymphwatch/internal/intake"
	"github.com/abhisek/lymphwatch/internal/progress"
)

func TestNew_TagResolution(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want language.Tag
	}{
		{"english", "en", language.English},
		{"simplified chinese", "zh-Hans", language.SimplifiedChinese},
		{"spanish", "es", language.Spanish},
		{"regional spanish collapses", "es-MX", language.Spanish},
		{"regional english collapses", "en-GB", language.English},
		{"plain zh matches simplified", "zh", language.SimplifiedChinese},
		{"unsupported falls back", "fr", language.English},
		{"garbage falls back", "not-a-tag!!", language.English},
		{"empty falls back", "", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.tag)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.Tag() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, l.Tag())
			}
		})
	}
}

func TestText_Translations(t *testing.T) {
	zh, err := New("zh-Hans")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := zh.Text("Severe"); got != "严重" {
		t.Errorf("expected 严重, got %q", got)
	}
	if got := zh.Text("Yes"); got != "是" {
		t.Errorf("expected 是, got %q", got)
	}

	es, err := New("es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := es.Text("None"); got == "None" {
		t.Error("expected a Spanish translation for 'None'")
	}
}

func TestText_MissingKeyFallsBackToKey(t *testing.T) {
	l, err := New("zh-Hans")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.Text("totally_unknown_key"); got != "totally_unknown_key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestCatalogs_CoverUIKeys(t *testing.T) {
	// Every severity/binary label, question key, and verdict message must
	// resolve in every supported language.
	verdicts := []progress.Verdict{
		progress.VerdictFirstTimeLow, progress.VerdictFirstTimeElevated,
		progress.VerdictImproved, progress.VerdictImprovedSubstantially,
		progress.VerdictUnchanged, progress.VerdictNeedsAttention,
	}

	for _, tag := range Available() {
		l, err := New(tag)
		if err != nil {
			t.Fatalf("%s: %v", tag, err)
		}
		for _, key := range intake.SeverityLabelKeys() {
			if l.Text(key) == "" {
				t.Errorf("%s: empty label for %q", tag, key)
			}
		}
		for _, key := range intake.BinaryLabelKeys() {
			if l.Text(key) == "" {
				t.Errorf("%s: empty label for %q", tag, key)
			}
		}
		for _, v := range verdicts {
			key := v.MessageKey()
			if got := l.Text(key); got == key {
				t.Errorf("%s: missing verdict message %q", tag, key)
			}
		}
	}
}

func TestTextf(t *testing.T) {
	l, err := New("en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.Textf("%d of %d", 3, 35); got != "3 of 35" {
		t.Errorf("expected '3 of 35', got %q", got)
	}
}

func TestAvailable(t *testing.T) {
	got := Available()
	want := []string{"en", "zh-Hans", "es"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

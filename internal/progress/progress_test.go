package progress

import (
	"testing"

	"github.com/abhisek/lymphwatch/internal/risk"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		newScore  float64
		history   []float64
		dominant  risk.Class
		persisted bool
		want      Verdict
	}{
		{
			name:     "first time low",
			newScore: 10,
			dominant: risk.ClassLowRisk,
			want:     VerdictFirstTimeLow,
		},
		{
			name:     "first time mild",
			newScore: 55,
			dominant: risk.ClassMild,
			want:     VerdictFirstTimeElevated,
		},
		{
			name:     "first time severe",
			newScore: 90,
			dominant: risk.ClassModerateSevere,
			want:     VerdictFirstTimeElevated,
		},
		{
			name:     "low risk is improved regardless of delta",
			newScore: 30,
			history:  []float64{10},
			dominant: risk.ClassLowRisk,
			want:     VerdictImproved,
		},
		{
			name:     "score rose",
			newScore: 72,
			history:  []float64{70},
			dominant: risk.ClassMild,
			want:     VerdictNeedsAttention,
		},
		{
			name:     "score identical",
			newScore: 70,
			history:  []float64{70},
			dominant: risk.ClassMild,
			want:     VerdictUnchanged,
		},
		{
			name:     "dropped past threshold",
			newScore: 65,
			history:  []float64{70},
			dominant: risk.ClassMild,
			want:     VerdictImprovedSubstantially,
		},
		{
			name:     "dropped exactly threshold",
			newScore: 67,
			history:  []float64{70},
			dominant: risk.ClassMild,
			want:     VerdictImproved,
		},
		{
			name:     "dropped within threshold",
			newScore: 69,
			history:  []float64{70},
			dominant: risk.ClassMild,
			want:     VerdictImproved,
		},
		{
			name:     "compares against most recent entry",
			newScore: 65,
			history:  []float64{40, 70},
			dominant: risk.ClassModerateSevere,
			want:     VerdictImprovedSubstantially,
		},
		{
			name:      "persisted score is excluded from its own comparison",
			newScore:  65,
			history:   []float64{70, 65},
			dominant:  risk.ClassMild,
			persisted: true,
			want:      VerdictImprovedSubstantially,
		},
		{
			name:      "persisted first-ever score",
			newScore:  65,
			history:   []float64{65},
			dominant:  risk.ClassMild,
			persisted: true,
			want:      VerdictFirstTimeElevated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.newScore, tt.history, tt.dominant, tt.persisted)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want.MessageKey(), got.MessageKey())
			}
		})
	}
}

func TestVerdict_MessageKey(t *testing.T) {
	keys := map[Verdict]string{
		VerdictFirstTimeLow:          "verdict_first_low",
		VerdictFirstTimeElevated:     "verdict_first_elevated",
		VerdictImproved:              "verdict_improved",
		VerdictImprovedSubstantially: "verdict_improved_much",
		VerdictUnchanged:             "verdict_unchanged",
		VerdictNeedsAttention:        "verdict_needs_attention",
	}
	for v, want := range keys {
		if got := v.MessageKey(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
	if Verdict(99).MessageKey() != "unknown" {
		t.Error("expected 'unknown' for out-of-range verdict")
	}
}

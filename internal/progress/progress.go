// Package progress classifies how a new risk score compares with the
// user's own history.
package progress

import "github.com/abhisek/lymphwatch/internal/risk"

// Verdict is the qualitative trend of the latest assessment. Computed
// fresh per submission and never persisted.
type Verdict int

const (
	// VerdictFirstTimeLow: no prior history, dominant class low risk.
	VerdictFirstTimeLow Verdict = iota
	// VerdictFirstTimeElevated: no prior history, dominant class mild or
	// moderate/severe.
	VerdictFirstTimeElevated
	// VerdictImproved: score moved down by up to the substantial-change
	// threshold, or the dominant class is low risk.
	VerdictImproved
	// VerdictImprovedSubstantially: score moved down by more than the
	// threshold.
	VerdictImprovedSubstantially
	// VerdictUnchanged: score identical to the previous one.
	VerdictUnchanged
	// VerdictNeedsAttention: elevated dominant class and the score moved
	// up.
	VerdictNeedsAttention
)

// MessageKey returns the translation key for the verdict's user-facing
// message.
func (v Verdict) MessageKey() string {
	switch v {
	case VerdictFirstTimeLow:
		return "verdict_first_low"
	case VerdictFirstTimeElevated:
		return "verdict_first_elevated"
	case VerdictImproved:
		return "verdict_improved"
	case VerdictImprovedSubstantially:
		return "verdict_improved_much"
	case VerdictUnchanged:
		return "verdict_unchanged"
	case VerdictNeedsAttention:
		return "verdict_needs_attention"
	}
	return "unknown"
}

// Threshold is the score delta separating "improved" from "improved
// substantially", on the 0-100 scale. Fixed: it matches the smallest
// class-probability shift that is clinically meaningful.
const Threshold = 3.0

// Compare produces the verdict for a new score against the user's ordered
// history (oldest first). alreadyPersisted tells the comparator whether
// the new score has been appended to history yet; the orchestrator decides
// persistence order, so it must say which case applies.
func Compare(newScore float64, history []float64, dominant risk.Class, alreadyPersisted bool) Verdict {
	prior := history
	if alreadyPersisted && len(prior) > 0 {
		prior = prior[:len(prior)-1]
	}

	if len(prior) == 0 {
		if dominant.Elevated() {
			return VerdictFirstTimeElevated
		}
		return VerdictFirstTimeLow
	}

	// A low-risk result is always framed positively, whatever the delta.
	if !dominant.Elevated() {
		return VerdictImproved
	}

	previous := prior[len(prior)-1]
	switch {
	case newScore > previous:
		return VerdictNeedsAttention
	case newScore == previous:
		return VerdictUnchanged
	case previous-newScore > Threshold:
		return VerdictImprovedSubstantially
	default:
		return VerdictImproved
	}
}

package intake

import (
	"fmt"
	"strings"
)

// IncompleteDataError reports that a required question was left unanswered.
// Recoverable: the caller returns the user to the form, nothing is scored
// or persisted.
type IncompleteDataError struct {
	// Key is the first required question found unanswered.
	Key string
	// Position is the question's index in the questionnaire.
	Position int
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("required question %q (position %d) is unanswered", e.Key, e.Position)
}

// Validate enforces the all-required-filled policy: every question in the
// required prefix must have a non-empty, non-sentinel answer after
// whitespace trimming. Optional questions left blank are coerced to the
// Unanswered sentinel in place. Validate is idempotent; re-validating an
// already-valid record changes nothing.
func Validate(r *Record) error {
	for i, q := range questions {
		answer := strings.TrimSpace(r.answers[q.Key])
		if answer != "" && answer != Unanswered {
			r.answers[q.Key] = answer
			continue
		}
		if i < RequiredCount {
			return &IncompleteDataError{Key: q.Key, Position: i}
		}
		r.answers[q.Key] = Unanswered
	}
	return nil
}

// Complete reports whether the record would pass Validate, without
// mutating it.
func Complete(r *Record) bool {
	for i := 0; i < RequiredCount; i++ {
		answer := strings.TrimSpace(r.answers[questions[i].Key])
		if answer == "" || answer == Unanswered {
			return false
		}
	}
	return true
}

// Package risk turns classifier probability distributions into the 0-100
// risk score shown to the user.
package risk

import (
	"fmt"
	"math"
)

// Class is one of the three ordered risk classes.
type Class int

const (
	ClassLowRisk Class = iota
	ClassMild
	ClassModerateSevere
)

// MessageKey returns the translation key for the class label.
func (c Class) MessageKey() string {
	switch c {
	case ClassLowRisk:
		return "low_risk"
	case ClassMild:
		return "mild"
	case ClassModerateSevere:
		return "moderate_severe"
	}
	return "unknown"
}

// Elevated reports whether the class is mild or moderate/severe.
func (c Class) Elevated() bool {
	return c == ClassMild || c == ClassModerateSevere
}

// sumTolerance is the allowed deviation of the probability sum from 1.
const sumTolerance = 1e-6

// Distribution is a classifier output: probabilities over the three
// ordered classes. The engine only ever reads it.
type Distribution [3]float64

// InvalidDistributionError reports a malformed classifier output. This is
// a collaborator contract violation: the submission is abandoned, nothing
// is scored or persisted.
type InvalidDistributionError struct {
	Dist   Distribution
	Reason string
}

func (e *InvalidDistributionError) Error() string {
	return fmt.Sprintf("invalid distribution %v: %s", e.Dist, e.Reason)
}

// Validate checks that all probabilities are non-negative finite values
// summing to 1 within tolerance.
func (d Distribution) Validate() error {
	sum := 0.0
	for _, p := range d {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return &InvalidDistributionError{Dist: d, Reason: "non-finite probability"}
		}
		if p < 0 {
			return &InvalidDistributionError{Dist: d, Reason: "negative probability"}
		}
		sum += p
	}
	if math.Abs(sum-1) > sumTolerance {
		return &InvalidDistributionError{Dist: d, Reason: fmt.Sprintf("probabilities sum to %g", sum)}
	}
	return nil
}

// Dominant returns the arg-max class. Ties break to the lower index.
func (d Distribution) Dominant() Class {
	best := 0
	for i := 1; i < len(d); i++ {
		if d[i] > d[best] {
			best = i
		}
	}
	return Class(best)
}

// runnerUp returns the index of the second-largest probability, with ties
// broken to the lower index.
func (d Distribution) runnerUp() int {
	max := int(d.Dominant())
	sub := -1
	for i := range d {
		if i == max {
			continue
		}
		if sub < 0 || d[i] > d[sub] {
			sub = i
		}
	}
	return sub
}

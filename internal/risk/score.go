package risk

import "fmt"

// Policy names a score derivation strategy. Two generations of report
// records exist, produced under different formulas; both stay selectable
// so historical scores remain reproducible.
type Policy string

const (
	// PolicyWeighted is the linear expectation over class weights
	// {0, 50, 100}.
	PolicyWeighted Policy = "weighted"
	// PolicyDominant anchors on the arg-max class and shifts by the
	// runner-up margin, giving a smoother continuum near class
	// boundaries.
	PolicyDominant Policy = "dominant"
)

// Calculator derives a 0-100 score from a distribution under one policy.
type Calculator interface {
	Policy() Policy
	Score(d Distribution) (float64, error)
}

// NewCalculator returns the calculator for the named policy.
func NewCalculator(p Policy) (Calculator, error) {
	switch p {
	case PolicyWeighted:
		return weightedCalculator{}, nil
	case PolicyDominant:
		return dominantCalculator{}, nil
	}
	return nil, fmt.Errorf("unknown score policy %q", p)
}

// classWeights are the per-class weights for the weighted policy.
var classWeights = [3]float64{0, 50, 100}

type weightedCalculator struct{}

func (weightedCalculator) Policy() Policy { return PolicyWeighted }

func (weightedCalculator) Score(d Distribution) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	score := 0.0
	for i, p := range d {
		score += p * classWeights[i]
	}
	return score, nil
}

type dominantCalculator struct{}

func (dominantCalculator) Policy() Policy { return PolicyDominant }

func (dominantCalculator) Score(d Distribution) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	max := int(d.Dominant())
	sub := d.runnerUp()
	margin := d[max] - d[sub]

	var score float64
	switch Class(max) {
	case ClassModerateSevere:
		score = 2.0/3.0 + margin/3
	case ClassLowRisk:
		score = 0 + margin/3
	case ClassMild:
		bias := margin / 6
		// A mild-dominant prediction leans toward whichever side the
		// runner-up sits on.
		if sub == int(ClassModerateSevere) {
			score = 0.5 + bias
		} else {
			score = 0.5 - bias
		}
	}
	return score * 100, nil
}

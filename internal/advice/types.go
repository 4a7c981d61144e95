package advice

import (
	"github.com/abhisek/lymphwatch/internal/features"
	"github.com/abhisek/lymphwatch/internal/progress"
	"github.com/abhisek/lymphwatch/internal/risk"
)

// Input carries the assessment outcome the advice text is based on.
type Input struct {
	Class   risk.Class
	Score   float64
	Verdict progress.Verdict

	// PreviousScores holds earlier recorded scores, oldest first.
	PreviousScores []float64

	// Vector is the encoded feature set from the submitted questionnaire.
	Vector features.Vector
}

// Advice is a short personalized self-care note shown after an assessment.
type Advice struct {
	Summary         string
	Recommendations []string
	SeeClinician    bool
}

// Config holds advice generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for advice generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.4,
	}
}

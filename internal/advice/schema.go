package advice

import "github.com/abhisek/lymphwatch/internal/llm"

// AdviceSchema defines the JSON schema for post-assessment advice.
var AdviceSchema = &llm.Schema{
	Name:        "self-care-advice",
	Description: "Short self-care advice after a lymphedema symptom assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence plain-language summary of what the assessment shows",
			},
			"recommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    2,
				"maxItems":    4,
				"description": "Concrete self-care actions, one short sentence each",
			},
			"see_clinician": map[string]any{
				"type":        "boolean",
				"description": "Whether the person should contact their care team about these symptoms",
			},
		},
		"required":             []any{"summary", "recommendations", "see_clinician"},
		"additionalProperties": false,
	},
}

package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func adviceTestSchema() *Schema {
	return &Schema{
		Name:        "care-advice",
		Description: "Self-care advice for a risk assessment",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
				"recommendations": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"severity": map[string]any{
					"type": "string",
					"enum": []any{"low", "mild", "high"},
				},
			},
			"required": []any{"summary", "recommendations"},
		},
	}
}

func TestValidateResponseAcceptsConforming(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Symptoms stable.","recommendations":["Continue exercises"],"severity":"low"}`)
	if err := validateResponse(adviceTestSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponseAcceptsWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Symptoms stable.","recommendations":[]}`)
	if err := validateResponse(adviceTestSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Symptoms stable."}`)
	err := validateResponse(adviceTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"summary":"ok","recommendations":"not an array"}`)
	err := validateResponse(adviceTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponseBadEnum(t *testing.T) {
	raw := json.RawMessage(`{"summary":"ok","recommendations":[],"severity":"catastrophic"}`)
	err := validateResponse(adviceTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(adviceTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
	if invErr.Content == nil {
		t.Error("expected the raw content carried on the error")
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("nil schema must skip validation, got %v", err)
	}
}

func TestValidateResponseNestedArrays(t *testing.T) {
	schema := &Schema{
		Name: "nested-advice",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"plan": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"scores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "number"},
				},
			},
			"required": []any{"plan", "scores"},
		},
	}

	valid := json.RawMessage(`{"plan":{"title":"week one"},"scores":[12.5,40.0]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := json.RawMessage(`{"plan":{"title":"week one"},"scores":["high"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

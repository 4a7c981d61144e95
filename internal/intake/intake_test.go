package intake

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// filled returns a record with the whole required prefix answered and the
// optional tail left blank.
func filled(t *testing.T) *Record {
	t.Helper()
	r := NewRecord()
	for i, q := range questions {
		if i >= RequiredCount {
			break
		}
		var v string
		switch q.Kind {
		case KindNumber:
			v = "42"
		case KindSeverity:
			v = "1"
		case KindBinary:
			v = "0"
		}
		if err := r.Set(q.Key, v); err != nil {
			t.Fatalf("set %q: %v", q.Key, err)
		}
	}
	return r
}

func TestQuestions_FixedRegistry(t *testing.T) {
	qs := Questions()
	if len(qs) != QuestionCount() {
		t.Fatalf("expected %d questions, got %d", QuestionCount(), len(qs))
	}
	if QuestionCount() != 35 {
		t.Fatalf("expected 35 questions, got %d", QuestionCount())
	}
	if qs[0].Key != KeyAge {
		t.Errorf("expected first question %q, got %q", KeyAge, qs[0].Key)
	}
	if qs[RequiredCount-1].Key != KeyBlister {
		t.Errorf("expected last required question %q, got %q", KeyBlister, qs[RequiredCount-1].Key)
	}
	if qs[RequiredCount].Key != KeyChemotherapy {
		t.Errorf("expected first optional question %q, got %q", KeyChemotherapy, qs[RequiredCount].Key)
	}
}

func TestRecord_SetRejectsUnknownKey(t *testing.T) {
	r := NewRecord()
	if err := r.Set("Shoe size", "9"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if err := r.Set(KeyAge, "51"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Get(KeyAge); got != "51" {
		t.Errorf("expected '51', got %q", got)
	}
}

func TestRecord_CloneIsIndependent(t *testing.T) {
	r := NewRecord()
	_ = r.Set(KeyAge, "51")

	c := r.Clone()
	_ = c.Set(KeyAge, "60")

	if r.Get(KeyAge) != "51" {
		t.Errorf("clone mutation leaked into original: %q", r.Get(KeyAge))
	}
	if c.Get(KeyAge) != "60" {
		t.Errorf("expected '60' on clone, got %q", c.Get(KeyAge))
	}
}

func TestRecord_JSONRoundTrip(t *testing.T) {
	r := filled(t)
	_ = r.Set(KeyChemotherapy, "1")

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Keys are emitted in questionnaire order.
	s := string(data)
	if !strings.HasPrefix(s, `{"Age (years)":`) {
		t.Errorf("expected age first, got prefix %q", s[:30])
	}
	if strings.Index(s, KeyWeight) > strings.Index(s, KeyShoulder) {
		t.Error("expected weight before shoulder in serialized order")
	}

	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, q := range Questions() {
		if back.Get(q.Key) != r.Get(q.Key) {
			t.Errorf("%q: expected %q, got %q", q.Key, r.Get(q.Key), back.Get(q.Key))
		}
	}
}

func TestRecord_UnmarshalIgnoresUnknownKeys(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"Age (years)":"51","Legacy field":"x"}`), &r)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Get(KeyAge) != "51" {
		t.Errorf("expected '51', got %q", r.Get(KeyAge))
	}
	if r.Get("Legacy field") != "" {
		t.Error("unknown key should not be stored")
	}
	if r.Get(KeyWeight) != "" {
		t.Errorf("missing key should stay empty, got %q", r.Get(KeyWeight))
	}
}

func TestValidate_RequiredUnanswered(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"sentinel", Unanswered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := filled(t)
			_ = r.Set(KeyPAS, tt.value)

			err := Validate(r)
			var incomplete *IncompleteDataError
			if !errors.As(err, &incomplete) {
				t.Fatalf("expected IncompleteDataError, got %v", err)
			}
			if incomplete.Key != KeyPAS {
				t.Errorf("expected key %q, got %q", KeyPAS, incomplete.Key)
			}
			if incomplete.Position != 13 {
				t.Errorf("expected position 13, got %d", incomplete.Position)
			}
		})
	}
}

func TestValidate_OptionalBlanksCoerced(t *testing.T) {
	r := filled(t)

	if err := Validate(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range Questions() {
		if i < RequiredCount {
			continue
		}
		if got := r.Get(q.Key); got != Unanswered {
			t.Errorf("%q: expected sentinel, got %q", q.Key, got)
		}
	}
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	r := filled(t)
	_ = r.Set(KeyAge, "  51 ")

	if err := Validate(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Get(KeyAge); got != "51" {
		t.Errorf("expected trimmed '51', got %q", got)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	r := filled(t)
	_ = r.Set(KeySLNBRemoved, "3")

	if err := Validate(r); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	snapshot, _ := json.Marshal(r)

	if err := Validate(r); err != nil {
		t.Fatalf("second validate: %v", err)
	}
	again, _ := json.Marshal(r)

	if string(snapshot) != string(again) {
		t.Error("re-validating a valid record changed it")
	}
}

func TestComplete_DoesNotMutate(t *testing.T) {
	r := filled(t)
	if !Complete(r) {
		t.Fatal("expected complete record")
	}
	// Optional tail stays untouched.
	if got := r.Get(KeyChemotherapy); got != "" {
		t.Errorf("Complete mutated record: %q", got)
	}

	_ = r.Set(KeyAge, "")
	if Complete(r) {
		t.Fatal("expected incomplete record")
	}
}

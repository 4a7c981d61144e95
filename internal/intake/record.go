package intake

import (
	"encoding/json"
	"fmt"
)

// Record holds one user's raw questionnaire answers, keyed by question.
// A Record always contains exactly the fixed question key set; Set rejects
// unknown keys and keys are never removed.
type Record struct {
	answers map[string]string
}

// NewRecord creates a Record with every answer empty.
func NewRecord() *Record {
	r := &Record{answers: make(map[string]string, len(questions))}
	for _, q := range questions {
		r.answers[q.Key] = ""
	}
	return r
}

// Set stores a raw answer. Returns an error for keys outside the registry.
func (r *Record) Set(key, value string) error {
	if _, ok := r.answers[key]; !ok {
		return fmt.Errorf("unknown question key %q", key)
	}
	r.answers[key] = value
	return nil
}

// Get returns the raw answer for key, or "" for unknown keys.
func (r *Record) Get(key string) string {
	return r.answers[key]
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := NewRecord()
	for k, v := range r.answers {
		c.answers[k] = v
	}
	return c
}

// MarshalJSON encodes the record as a flat key→answer object in
// questionnaire order, the shape the persistence layer stores.
func (r *Record) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, q := range questions {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(q.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.answers[q.Key])
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

// UnmarshalJSON decodes a flat key→answer object. Unknown keys are ignored
// so older persisted records load cleanly; missing keys stay empty.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if r.answers == nil {
		*r = *NewRecord()
	}
	for k, v := range raw {
		if _, ok := r.answers[k]; ok {
			r.answers[k] = v
		}
	}
	return nil
}

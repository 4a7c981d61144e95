package classifier

import (
	"context"
	"sync"

	"github.com/abhisek/lymphwatch/internal/features"
	"github.com/abhisek/lymphwatch/internal/risk"
)

// MockClassifier is a deterministic Classifier for tests and for running
// the app without a model file. It returns canned distributions in FIFO
// order, falling back to a heuristic once the queue is empty, and records
// every vector it was asked to score.
type MockClassifier struct {
	mu        sync.Mutex
	responses []risk.Distribution
	err       error

	// Calls records the vectors passed to Predict.
	Calls []features.Vector
}

var _ Classifier = (*MockClassifier)(nil)

// NewMockClassifier creates a mock with the given canned distributions.
func NewMockClassifier(responses ...risk.Distribution) *MockClassifier {
	return &MockClassifier{responses: responses}
}

// Fail makes every subsequent Predict return err.
func (m *MockClassifier) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Predict returns the next canned distribution. With an empty queue it
// derives a plausible distribution from the symptom load, so interactive
// mock runs stay responsive to the answers given.
func (m *MockClassifier) Predict(_ context.Context, vec features.Vector) (risk.Distribution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, vec)
	if m.err != nil {
		return risk.Distribution{}, m.err
	}
	if len(m.responses) > 0 {
		d := m.responses[0]
		m.responses = m.responses[1:]
		return d, nil
	}
	return heuristic(vec), nil
}

// Manifest describes the mock as a full-vector model.
func (m *MockClassifier) Manifest() Manifest {
	return Manifest{ModelID: "mock", Inputs: features.Names()}
}

// Close is a no-op.
func (m *MockClassifier) Close() error { return nil }

// heuristic maps symptom load onto a smooth 3-class distribution. Only
// used by interactive mock runs; tests queue explicit distributions.
func heuristic(vec features.Vector) risk.Distribution {
	load := (vec.SymptomCount/features.SymptomCountMax +
		vec.ArmSwelling/4 + vec.FHT/4) / 3
	if load > 1 {
		load = 1
	}
	high := load * load
	mid := load * (1 - load) * 2
	low := 1 - high - mid
	return risk.Distribution{low, mid, high}
}

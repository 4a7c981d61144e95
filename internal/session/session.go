// Package session orchestrates one questionnaire submission end to end:
// validate, encode, predict, score, compare, and the single permitted
// history append.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/lymphwatch/internal/classifier"
	"github.com/abhisek/lymphwatch/internal/features"
	"github.com/abhisek/lymphwatch/internal/intake"
	"github.com/abhisek/lymphwatch/internal/progress"
	"github.com/abhisek/lymphwatch/internal/risk"
	"github.com/abhisek/lymphwatch/internal/store"
)

// State is the submission pipeline position. Rejected is not terminal:
// control returns to the form.
type State int

const (
	StateEditing State = iota
	StateValidating
	StateEncoding
	StatePredicting
	StateScoring
	StateComparing
	StateCompleted
	StateRejected
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateEncoding:
		return "encoding"
	case StatePredicting:
		return "predicting"
	case StateScoring:
		return "scoring"
	case StateComparing:
		return "comparing"
	case StateCompleted:
		return "completed"
	case StateRejected:
		return "rejected"
	}
	return "unknown"
}

// Result is the outcome of one successful submission.
type Result struct {
	// SubmissionID uniquely identifies this submission.
	SubmissionID string
	// Vector is the encoded feature vector.
	Vector features.Vector
	// Distribution is the classifier output.
	Distribution risk.Distribution
	// Dominant is the arg-max risk class.
	Dominant risk.Class
	// Score is the 0-100 risk score under the configured policy.
	Score float64
	// Verdict is the trend relative to the user's history at submit time.
	Verdict progress.Verdict
}

// Orchestrator runs submissions for one user session. It owns the
// may-persist flag: each successful submission arms exactly one history
// append, consumed by the first PersistScore call, so re-rendering the
// result (e.g. after a language change) can never double-append.
type Orchestrator struct {
	clf     classifier.Classifier
	calc    risk.Calculator
	records store.RecordRepo
	log     *zap.Logger

	mu        sync.Mutex
	state     State
	saveArmed bool
	pending   float64
}

// New creates an Orchestrator. log may be nil.
func New(clf classifier.Classifier, calc risk.Calculator, records store.RecordRepo, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		clf:     clf,
		calc:    calc,
		records: records,
		log:     log.Named("session"),
		state:   StateEditing,
	}
}

// State returns the current pipeline state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// SaveDraft persists the raw answers as the user's suggestions without
// validating them. Mirrors the form's explicit Save action.
func (o *Orchestrator) SaveDraft(ctx context.Context, user string, rec *intake.Record) error {
	return o.records.SaveSuggestions(ctx, user, rec)
}

// LoadDraft returns the user's saved suggestions, or a fresh empty record
// if none exist.
func (o *Orchestrator) LoadDraft(ctx context.Context, user string) (*intake.Record, error) {
	rec, err := o.records.LoadSuggestions(ctx, user)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = intake.NewRecord()
	}
	return rec, nil
}

// Submit runs the full pipeline for one submission. On any failure the
// orchestrator moves to Rejected, nothing is persisted, and the error is
// returned for the form to surface. On success the suggestions are saved,
// the may-persist flag is armed, and the caller is expected to invoke
// PersistScore once the result is shown.
func (o *Orchestrator) Submit(ctx context.Context, user string, rec *intake.Record) (*Result, error) {
	id := uuid.NewString()

	o.setState(StateValidating)
	if err := intake.Validate(rec); err != nil {
		return nil, o.reject(id, err)
	}

	o.setState(StateEncoding)
	vec, err := features.Encode(rec)
	if err != nil {
		return nil, o.reject(id, err)
	}

	o.setState(StatePredicting)
	dist, err := o.clf.Predict(ctx, vec)
	if err != nil {
		return nil, o.reject(id, err)
	}

	// Predicting → Scoring arms the one-shot persistence permit.
	o.setState(StateScoring)
	score, err := o.calc.Score(dist)
	if err != nil {
		return nil, o.reject(id, err)
	}

	o.setState(StateComparing)
	history, err := o.records.LoadHistory(ctx, user)
	if err != nil {
		return nil, o.reject(id, err)
	}
	dominant := dist.Dominant()
	verdict := progress.Compare(score, history, dominant, false)

	// All computation succeeded; suggestions are saved only now so a
	// rejected submission leaves no trace.
	if err := o.records.SaveSuggestions(ctx, user, rec); err != nil {
		return nil, o.reject(id, err)
	}

	o.mu.Lock()
	o.state = StateCompleted
	o.saveArmed = true
	o.pending = score
	o.mu.Unlock()

	o.log.Info("submission scored",
		zap.String("submission", id),
		zap.String("policy", string(o.calc.Policy())),
		zap.String("dominant", dominant.MessageKey()),
		zap.Float64("score", score),
	)

	return &Result{
		SubmissionID: id,
		Vector:       vec,
		Distribution: dist,
		Dominant:     dominant,
		Score:        score,
		Verdict:      verdict,
	}, nil
}

// PersistScore appends the pending score to the user's history if the
// permit is still armed. The flag is read and cleared under the lock, so
// re-entrant calls from UI refreshes append at most once. Returns whether
// an append happened.
func (o *Orchestrator) PersistScore(ctx context.Context, user string) (bool, error) {
	o.mu.Lock()
	if !o.saveArmed {
		o.mu.Unlock()
		return false, nil
	}
	score := o.pending
	o.saveArmed = false
	o.mu.Unlock()

	if err := o.records.AppendHistory(ctx, user, score); err != nil {
		// Append failed; re-arm so a later render can retry.
		o.mu.Lock()
		o.saveArmed = true
		o.mu.Unlock()
		return false, fmt.Errorf("append history: %w", err)
	}
	return true, nil
}

// Reverdict recomputes the verdict for a completed submission, e.g. when
// a locale change rebuilds the result view. It consults the persistence
// flag to tell the comparator whether the score already sits in history.
func (o *Orchestrator) Reverdict(ctx context.Context, user string, res *Result) (progress.Verdict, error) {
	o.mu.Lock()
	persisted := !o.saveArmed
	o.mu.Unlock()

	history, err := o.records.LoadHistory(ctx, user)
	if err != nil {
		return 0, err
	}
	return progress.Compare(res.Score, history, res.Dominant, persisted), nil
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// reject logs the failure, parks the pipeline in Rejected, and returns
// the cause unchanged so callers can inspect the typed error.
func (o *Orchestrator) reject(id string, err error) error {
	o.mu.Lock()
	o.state = StateRejected
	o.saveArmed = false
	o.mu.Unlock()

	o.log.Warn("submission rejected",
		zap.String("submission", id),
		zap.Error(err),
	)
	return err
}

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/lymphwatch/internal/classifier"
	"github.com/abhisek/lymphwatch/internal/features"
	"github.com/abhisek/lymphwatch/internal/intake"
	"github.com/abhisek/lymphwatch/internal/progress"
	"github.com/abhisek/lymphwatch/internal/risk"
)

// memRepo is an in-memory RecordRepo that counts appends.
type memRepo struct {
	history     map[string][]float64
	suggestions map[string]*intake.Record
	appends     int
	appendErr   error
	saveErr     error
}

func newMemRepo() *memRepo {
	return &memRepo{
		history:     make(map[string][]float64),
		suggestions: make(map[string]*intake.Record),
	}
}

func (m *memRepo) LoadHistory(_ context.Context, user string) ([]float64, error) {
	return append([]float64(nil), m.history[user]...), nil
}

func (m *memRepo) AppendHistory(_ context.Context, user string, score float64) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appends++
	m.history[user] = append(m.history[user], score)
	return nil
}

func (m *memRepo) LoadSuggestions(_ context.Context, user string) (*intake.Record, error) {
	rec, ok := m.suggestions[user]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

func (m *memRepo) SaveSuggestions(_ context.Context, user string, rec *intake.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.suggestions[user] = rec.Clone()
	return nil
}

// completeRecord fills the required prefix with plausible answers.
func completeRecord(t *testing.T) *intake.Record {
	t.Helper()
	r := intake.NewRecord()
	_ = r.Set(intake.KeyAge, "51")
	_ = r.Set(intake.KeyTimeLapse, "2")
	_ = r.Set(intake.KeyWeight, "60")
	_ = r.Set(intake.KeyHeight, "170")
	for i, q := range intake.Questions() {
		if i < 4 || i >= intake.RequiredCount {
			continue
		}
		_ = r.Set(q.Key, "1")
	}
	return r
}

func newOrchestrator(t *testing.T, clf classifier.Classifier, repo *memRepo) *Orchestrator {
	t.Helper()
	calc, err := risk.NewCalculator(risk.PolicyDominant)
	if err != nil {
		t.Fatalf("calculator: %v", err)
	}
	return New(clf, calc, repo, nil)
}

func TestSubmit_HappyPath(t *testing.T) {
	repo := newMemRepo()
	clf := classifier.NewMockClassifier(risk.Distribution{0.1, 0.2, 0.7})
	orch := newOrchestrator(t, clf, repo)

	res, err := orch.Submit(t.Context(), "ada", completeRecord(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.SubmissionID == "" {
		t.Error("expected a submission id")
	}
	if res.Dominant != risk.ClassModerateSevere {
		t.Errorf("expected moderate/severe dominant, got %d", res.Dominant)
	}
	if res.Score < 83 || res.Score > 84 {
		t.Errorf("expected score near 83.3, got %.4f", res.Score)
	}
	if res.Verdict != progress.VerdictFirstTimeElevated {
		t.Errorf("expected first-time elevated verdict, got %q", res.Verdict.MessageKey())
	}
	if orch.State() != StateCompleted {
		t.Errorf("expected completed state, got %s", orch.State())
	}

	// Submit itself persists suggestions but never the score.
	if repo.suggestions["ada"] == nil {
		t.Error("expected suggestions saved")
	}
	if repo.appends != 0 {
		t.Errorf("expected no history append before PersistScore, got %d", repo.appends)
	}
}

func TestPersistScore_AtMostOnce(t *testing.T) {
	repo := newMemRepo()
	clf := classifier.NewMockClassifier(risk.Distribution{0.1, 0.2, 0.7})
	orch := newOrchestrator(t, clf, repo)

	res, err := orch.Submit(t.Context(), "ada", completeRecord(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two renders of the result screen invoke PersistScore twice.
	appended, err := orch.PersistScore(t.Context(), "ada")
	if err != nil || !appended {
		t.Fatalf("expected first call to append, got (%v, %v)", appended, err)
	}
	appended, err = orch.PersistScore(t.Context(), "ada")
	if err != nil || appended {
		t.Fatalf("expected second call to be a no-op, got (%v, %v)", appended, err)
	}

	if repo.appends != 1 {
		t.Fatalf("expected exactly one append, got %d", repo.appends)
	}
	if got := repo.history["ada"]; len(got) != 1 || got[0] != res.Score {
		t.Errorf("unexpected history: %v", got)
	}
}

func TestPersistScore_RearmsOnFailure(t *testing.T) {
	repo := newMemRepo()
	clf := classifier.NewMockClassifier(risk.Distribution{0.1, 0.2, 0.7})
	orch := newOrchestrator(t, clf, repo)

	if _, err := orch.Submit(t.Context(), "ada", completeRecord(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.appendErr = errors.New("disk full")
	if appended, err := orch.PersistScore(t.Context(), "ada"); err == nil || appended {
		t.Fatalf("expected failure, got (%v, %v)", appended, err)
	}

	// The permit survives the failure, so a retry succeeds.
	repo.appendErr = nil
	appended, err := orch.PersistScore(t.Context(), "ada")
	if err != nil || !appended {
		t.Fatalf("expected retry to append, got (%v, %v)", appended, err)
	}
	if repo.appends != 1 {
		t.Errorf("expected one append, got %d", repo.appends)
	}
}

func TestSubmit_ValidationFailureLeavesNoTrace(t *testing.T) {
	repo := newMemRepo()
	clf := classifier.NewMockClassifier()
	orch := newOrchestrator(t, clf, repo)

	rec := completeRecord(t)
	_ = rec.Set(intake.KeyPAS, "")

	_, err := orch.Submit(t.Context(), "ada", rec)
	var incomplete *intake.IncompleteDataError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteDataError, got %v", err)
	}

	if orch.State() != StateRejected {
		t.Errorf("expected rejected state, got %s", orch.State())
	}
	if len(clf.Calls) != 0 {
		t.Error("classifier must not run on invalid input")
	}
	if repo.suggestions["ada"] != nil {
		t.Error("rejected submission must not save suggestions")
	}
	if appended, _ := orch.PersistScore(t.Context(), "ada"); appended {
		t.Error("rejected submission must not arm persistence")
	}
}

func TestSubmit_EncodingFailure(t *testing.T) {
	repo := newMemRepo()
	clf := classifier.NewMockClassifier()
	orch := newOrchestrator(t, clf, repo)

	rec := completeRecord(t)
	_ = rec.Set(intake.KeyTimeLapse, "0")

	_, err := orch.Submit(t.Context(), "ada", rec)
	var domain *features.DomainError
	if !errors.As(err, &domain) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	if len(clf.Calls) != 0 {
		t.Error("classifier must not run on out-of-domain input")
	}
}

func TestSubmit_PredictFailure(t *testing.T) {
	repo := newMemRepo()
	clf := classifier.NewMockClassifier()
	clf.Fail(errors.New("model load failed"))
	orch := newOrchestrator(t, clf, repo)

	if _, err := orch.Submit(t.Context(), "ada", completeRecord(t)); err == nil {
		t.Fatal("expected error")
	}
	if orch.State() != StateRejected {
		t.Errorf("expected rejected state, got %s", orch.State())
	}
	if repo.suggestions["ada"] != nil {
		t.Error("failed submission must not save suggestions")
	}
}

func TestSubmit_VerdictUsesHistory(t *testing.T) {
	repo := newMemRepo()
	repo.history["ada"] = []float64{70}
	clf := classifier.NewMockClassifier(risk.Distribution{0.2, 0.6, 0.2})
	orch := newOrchestrator(t, clf, repo)

	res, err := orch.Submit(t.Context(), "ada", completeRecord(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Dominant policy scores (0.2, 0.6, 0.2) near 43.3: a drop of more
	// than the threshold from 70.
	if res.Verdict != progress.VerdictImprovedSubstantially {
		t.Errorf("expected substantial improvement, got %q", res.Verdict.MessageKey())
	}
}

func TestReverdict_AfterPersist(t *testing.T) {
	repo := newMemRepo()
	repo.history["ada"] = []float64{70}
	clf := classifier.NewMockClassifier(risk.Distribution{0.2, 0.6, 0.2})
	orch := newOrchestrator(t, clf, repo)

	res, err := orch.Submit(t.Context(), "ada", completeRecord(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := orch.PersistScore(t.Context(), "ada"); err != nil {
		t.Fatalf("persist: %v", err)
	}

	// After persistence the score sits in history; the verdict must not
	// compare the score against itself.
	verdict, err := orch.Reverdict(t.Context(), "ada", res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != res.Verdict {
		t.Errorf("expected stable verdict %q, got %q", res.Verdict.MessageKey(), verdict.MessageKey())
	}
}

func TestDrafts(t *testing.T) {
	repo := newMemRepo()
	orch := newOrchestrator(t, classifier.NewMockClassifier(), repo)

	// No saved draft yields a fresh record.
	rec, err := orch.LoadDraft(t.Context(), "ada")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Get(intake.KeyAge) != "" {
		t.Error("expected empty fresh record")
	}

	// Drafts round-trip without validation.
	_ = rec.Set(intake.KeyAge, "51")
	if err := orch.SaveDraft(t.Context(), "ada", rec); err != nil {
		t.Fatalf("save draft: %v", err)
	}
	back, err := orch.LoadDraft(t.Context(), "ada")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Get(intake.KeyAge) != "51" {
		t.Errorf("expected draft age '51', got %q", back.Get(intake.KeyAge))
	}
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/lymphwatch/internal/intake"
)

// RecordRepo manages per-user suggestion records and score history. All
// operations are whole-record read/replace; a missing user yields an
// empty result, never an error.
type RecordRepo interface {
	// LoadHistory returns the user's scores, oldest first.
	LoadHistory(ctx context.Context, user string) ([]float64, error)

	// AppendHistory appends one score to the user's history.
	AppendHistory(ctx context.Context, user string, score float64) error

	// LoadSuggestions returns the user's saved answers, or nil if none
	// were ever saved.
	LoadSuggestions(ctx context.Context, user string) (*intake.Record, error)

	// SaveSuggestions replaces the user's saved answers.
	SaveSuggestions(ctx context.Context, user string, rec *intake.Record) error
}

type recordRepo struct {
	db *sql.DB
}

func (r *recordRepo) LoadHistory(ctx context.Context, user string) ([]float64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT score FROM scores WHERE user_name = ? ORDER BY id", user)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var history []float64
	for rows.Next() {
		var s float64
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		history = append(history, s)
	}
	return history, rows.Err()
}

func (r *recordRepo) AppendHistory(ctx context.Context, user string, score float64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO scores (user_name, score) VALUES (?, ?)", user, score)
	if err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	return nil
}

func (r *recordRepo) LoadSuggestions(ctx context.Context, user string) (*intake.Record, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		"SELECT answers FROM suggestions WHERE user_name = ?", user).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load suggestions: %w", err)
	}

	rec := intake.NewRecord()
	if err := json.Unmarshal([]byte(raw), rec); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return rec, nil
}

func (r *recordRepo) SaveSuggestions(ctx context.Context, user string, rec *intake.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode suggestions: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO suggestions (user_name, answers, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_name) DO UPDATE SET
			answers = excluded.answers,
			updated_at = excluded.updated_at`,
		user, string(raw))
	if err != nil {
		return fmt.Errorf("save suggestions: %w", err)
	}
	return nil
}

package store

import "database/sql"

// schema is the full DDL. Score rows are append-only: nothing in the
// application updates or deletes them short of account deletion, which
// cascades.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	name       TEXT PRIMARY KEY,
	pass_hash  TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS suggestions (
	user_name  TEXT PRIMARY KEY REFERENCES users(name) ON DELETE CASCADE,
	answers    TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS scores (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	user_name   TEXT NOT NULL REFERENCES users(name) ON DELETE CASCADE,
	score       REAL NOT NULL,
	recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scores_user ON scores(user_name, id);
`

func migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the sqlite database and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the sqlite database at dsn, applies recommended
// pragmas, and creates the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Per-user appends must serialize; a single connection makes writes
	// sequential without a separate lock table.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Users returns the user credential repository.
func (s *Store) Users() UserRepo {
	return &userRepo{db: s.db}
}

// Records returns the per-user suggestions/score-history repository.
func (s *Store) Records() RecordRepo {
	return &recordRepo{db: s.db}
}

// applyPragmas configures sqlite for single-user desktop use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LYMPHWATCH_DB environment variable
// 2. $XDG_DATA_HOME/lymphwatch/lymphwatch.db
// 3. ~/.local/share/lymphwatch/lymphwatch.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LYMPHWATCH_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lymphwatch", "lymphwatch.db")
	return p, EnsureDir(p)
}

// DataDir returns the directory holding the database at dbPath; logs and
// downloaded models live alongside it.
func DataDir(dbPath string) string {
	return filepath.Dir(dbPath)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

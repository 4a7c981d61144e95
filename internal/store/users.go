package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrUserExists is returned by Register for a taken username.
var ErrUserExists = errors.New("username already exists")

// ErrInvalidCredentials is returned by Authenticate and Delete when the
// username is unknown or the password does not match.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserRepo manages user credentials.
type UserRepo interface {
	// Register creates a user. Username and password must be non-blank.
	Register(ctx context.Context, name, password string) error

	// Authenticate verifies credentials.
	Authenticate(ctx context.Context, name, password string) error

	// Delete removes a user and, via cascade, their suggestions and
	// score history. The password must match.
	Delete(ctx context.Context, name, password string) error
}

type userRepo struct {
	db *sql.DB
}

func (r *userRepo) Register(ctx context.Context, name, password string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(password) == "" {
		return fmt.Errorf("username and password must not be blank")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO users (name, pass_hash) VALUES (?, ?)", name, string(hash))
	if err != nil {
		var exists bool
		if scanErr := r.db.QueryRowContext(ctx,
			"SELECT COUNT(*) > 0 FROM users WHERE name = ?", name).Scan(&exists); scanErr == nil && exists {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepo) Authenticate(ctx context.Context, name, password string) error {
	var hash string
	err := r.db.QueryRowContext(ctx,
		"SELECT pass_hash FROM users WHERE name = ?", name).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, name, password string) error {
	if err := r.Authenticate(ctx, name, password); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campuskit/campus-auth/internal/models"
	"github.com/campuskit/campus-auth/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides Postgres-backed persistence for users and reset codes.
type Store struct {
	pool *pgxpool.Pool
}

// New connects a pool and runs migrations.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id VARCHAR(255) PRIMARY KEY,
			user_type TEXT NOT NULL CHECK (user_type IN ('employee', 'student')),
			mobile_number TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS password_reset_codes (
			id BIGSERIAL PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL REFERENCES users(user_id),
			code TEXT NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL,
			consumed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS password_reset_codes_user_idx ON password_reset_codes (user_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// FindUserForLogin fetches the credential record for a login attempt.
func (s *Store) FindUserForLogin(ctx context.Context, userID string) (models.User, error) {
	const query = `
	SELECT user_id, user_type, mobile_number, password_hash, created_at, updated_at
	FROM users
	WHERE user_id = $1;
	`
	var user models.User
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&user.UserID, &user.UserType, &user.MobileNumber, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// ReplaceResetCode deletes any outstanding codes for the user and inserts
// the new one in a single transaction. The row lock on the user serializes
// concurrent requests so the last writer's code is the only active one.
func (s *Store) ReplaceResetCode(ctx context.Context, userID, code string, expiresAt time.Time) (string, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	var mobile string
	err = tx.QueryRow(ctx,
		`SELECT mobile_number FROM users WHERE user_id = $1 FOR UPDATE`,
		userID,
	).Scan(&mobile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", err
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM password_reset_codes WHERE user_id = $1`, userID,
	); err != nil {
		return "", err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO password_reset_codes (user_id, code, expires_at) VALUES ($1, $2, $3)`,
		userID, code, expiresAt,
	); err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return mobile, nil
}

// CheckResetCode reports whether a live code matches. Expiry is evaluated
// here by timestamp comparison; expired rows are never swept.
func (s *Store) CheckResetCode(ctx context.Context, userID, code string, now time.Time) (bool, error) {
	const query = `
	SELECT EXISTS (
		SELECT 1 FROM password_reset_codes
		WHERE user_id = $1 AND code = $2 AND consumed_at IS NULL AND expires_at > $3
	);
	`
	var valid bool
	if err := s.pool.QueryRow(ctx, query, userID, code, now).Scan(&valid); err != nil {
		return false, err
	}
	return valid, nil
}

// ConsumeResetCodeAndUpdatePassword locks the matching live code, marks it
// consumed, and rewrites the user's password hash, all in one transaction.
func (s *Store) ConsumeResetCodeAndUpdatePassword(ctx context.Context, userID, code, passwordHash string, now time.Time) (bool, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var codeID int64
	err = tx.QueryRow(ctx, `
	SELECT id FROM password_reset_codes
	WHERE user_id = $1 AND code = $2 AND consumed_at IS NULL AND expires_at > $3
	ORDER BY created_at DESC
	LIMIT 1
	FOR UPDATE
	`, userID, code, now).Scan(&codeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE password_reset_codes SET consumed_at = $2 WHERE id = $1`,
		codeID, now,
	); err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = $3 WHERE user_id = $1`,
		userID, passwordHash, now,
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		// User vanished; roll back so the code stays unconsumed.
		return false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

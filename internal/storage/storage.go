package storage

import (
	"context"
	"errors"
	"time"

	"github.com/campuskit/campus-auth/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store captures the persistence operations the auth service needs. Both
// reset-code writes are transactional: ReplaceResetCode removes any prior
// code and inserts the new one as a unit, and
// ConsumeResetCodeAndUpdatePassword marks the code consumed and rewrites
// the password hash as a unit, so concurrent resets cannot double-consume
// a code or resurrect a superseded one.
type Store interface {
	// FindUserForLogin returns the full credential record, ErrNotFound
	// when the user does not exist.
	FindUserForLogin(ctx context.Context, userID string) (models.User, error)

	// ReplaceResetCode stores code with the given expiry for the user,
	// invalidating any earlier code, and returns the registered mobile
	// number. ErrNotFound when the user does not exist.
	ReplaceResetCode(ctx context.Context, userID, code string, expiresAt time.Time) (string, error)

	// CheckResetCode reports whether an unconsumed code matching the exact
	// string exists with now < expires_at. Read-only.
	CheckResetCode(ctx context.Context, userID, code string, now time.Time) (bool, error)

	// ConsumeResetCodeAndUpdatePassword re-checks the code the same way as
	// CheckResetCode, then marks it consumed and writes the new password
	// hash in one transaction. Returns false (nothing written) when the
	// user is absent or no valid code matches.
	ConsumeResetCodeAndUpdatePassword(ctx context.Context, userID, code, passwordHash string, now time.Time) (bool, error)
}

// Package resetcode implements the one-time-code lifecycle: a code is
// bound to a single user, usable at most once, only inside its validity
// window, and superseded by any newer code for the same user.
package resetcode

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// CodeLength is the number of decimal digits in a reset code.
const CodeLength = 6

var codeSpace = big.NewInt(1_000_000)

// Store is the persistence subset the engine drives. The two mutating
// calls must be transactional on the store side; see storage.Store.
type Store interface {
	ReplaceResetCode(ctx context.Context, userID, code string, expiresAt time.Time) (string, error)
	CheckResetCode(ctx context.Context, userID, code string, now time.Time) (bool, error)
	ConsumeResetCodeAndUpdatePassword(ctx context.Context, userID, code, passwordHash string, now time.Time) (bool, error)
}

// Engine generates, verifies, and consumes reset codes.
type Engine struct {
	store Store
	ttl   time.Duration

	// Now and NewCode exist so tests can pin the clock and the generated
	// code; production uses the real clock and GenerateCode.
	Now     func() time.Time
	NewCode func() (string, error)
}

// New builds an engine whose codes live for ttl after issuance.
func New(store Store, ttl time.Duration) *Engine {
	return &Engine{
		store:   store,
		ttl:     ttl,
		Now:     time.Now,
		NewCode: GenerateCode,
	}
}

// RequestCode issues a fresh code for the user and returns it together
// with the registered mobile number. Any earlier code for the user is
// invalidated in the same store transaction, so under concurrent requests
// the last writer's code is the only one that verifies. Returns
// storage.ErrNotFound unwrapped when the user does not exist; the caller
// decides whether that distinction may leak.
func (e *Engine) RequestCode(ctx context.Context, userID string) (code, mobile string, err error) {
	code, err = e.NewCode()
	if err != nil {
		return "", "", fmt.Errorf("generate reset code: %w", err)
	}
	mobile, err = e.store.ReplaceResetCode(ctx, userID, code, e.Now().Add(e.ttl))
	if err != nil {
		return "", "", err
	}
	return code, mobile, nil
}

// VerifyCode reports whether code is currently valid for the user. It is
// read-only and idempotent: a UI may poll it without burning the code.
func (e *Engine) VerifyCode(ctx context.Context, userID, code string) (bool, error) {
	return e.store.CheckResetCode(ctx, userID, code, e.Now())
}

// ConsumeAndResetPassword re-validates the code against the current clock
// (a prior VerifyCode result is never trusted, the code may have expired
// in between) and, if valid, marks it consumed and stores the new password
// hash atomically. False means no valid code or no such user.
func (e *Engine) ConsumeAndResetPassword(ctx context.Context, userID, code, newPasswordHash string) (bool, error) {
	return e.store.ConsumeResetCodeAndUpdatePassword(ctx, userID, code, newPasswordHash, e.Now())
}

// GenerateCode draws a uniformly random code from 000000 to 999999,
// zero-padded so leading zeros survive as string digits.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}

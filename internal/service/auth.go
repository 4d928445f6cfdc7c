// Package service holds the auth facade: login plus the three-step
// password reset flow. It orchestrates the store, the reset-code engine,
// the token manager, and the SMS sender, and translates every outcome
// into an apperr value for the HTTP boundary.
package service

import (
	"context"
	"errors"
	"log"

	"github.com/campuskit/campus-auth/internal/apperr"
	"github.com/campuskit/campus-auth/internal/auth"
	"github.com/campuskit/campus-auth/internal/models/dto"
	"github.com/campuskit/campus-auth/internal/notify"
	"github.com/campuskit/campus-auth/internal/resetcode"
	"github.com/campuskit/campus-auth/internal/storage"
)

// AuthService wires the collaborators together. All dependencies are
// injected so tests can substitute fakes.
type AuthService struct {
	store  storage.Store
	codes  *resetcode.Engine
	tokens *auth.TokenManager
	sms    notify.Sender
}

// NewAuthService constructs the facade.
func NewAuthService(store storage.Store, codes *resetcode.Engine, tokens *auth.TokenManager, sms notify.Sender) *AuthService {
	return &AuthService{store: store, codes: codes, tokens: tokens, sms: sms}
}

// LoginResult is what a successful login hands back to the handler.
type LoginResult struct {
	User  dto.UserInfo
	Token string
}

// Login checks the credentials in one combined lookup and issues a bearer
// token. A missing user and a wrong password produce the identical 401 so
// callers cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, userID, password string) (*LoginResult, error) {
	user, err := s.store.FindUserForLogin(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		return nil, apperr.Internal("Failed to fetch user", err)
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Generate(user.UserID, user.UserType)
	if err != nil {
		return nil, apperr.Internal("Failed to generate token", err)
	}

	return &LoginResult{
		User: dto.UserInfo{
			UserID:       user.UserID,
			UserType:     user.UserType,
			MobileNumber: user.MobileNumber,
		},
		Token: token,
	}, nil
}

// ForgotPassword issues a reset code and attempts SMS delivery. It returns
// nil for unknown users (the handler's generic success message must be
// indistinguishable from the real thing) without touching the sender, and
// it also returns nil when delivery fails after the code was committed:
// the user may believe a code was sent when it was not, which is the
// accepted cost of not leaking delivery state. The failure is logged for
// internal monitoring.
func (s *AuthService) ForgotPassword(ctx context.Context, userID string) error {
	code, mobile, err := s.codes.RequestCode(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return apperr.Internal("Failed to generate reset code", err)
	}

	// The code transaction is committed at this point; delivery happens
	// outside any store lock.
	to := notify.FormatPhoneNumber(mobile)
	if sid, err := s.sms.Send(ctx, to, notify.ResetCodeMessage(code)); err != nil {
		log.Printf("forgot-password: sms delivery for user %s failed: %v", userID, err)
	} else {
		log.Printf("forgot-password: sms sent to user %s (message id %s)", userID, sid)
	}
	return nil
}

// VerifyResetCode checks the code without consuming it. Missing user and
// wrong code collapse into the same 400 message.
func (s *AuthService) VerifyResetCode(ctx context.Context, userID, code string) error {
	valid, err := s.codes.VerifyCode(ctx, userID, code)
	if err != nil {
		return apperr.Internal("Failed to verify code", err)
	}
	if !valid {
		return apperr.Validation("Invalid or expired verification code")
	}
	return nil
}

// ResetPassword re-validates the code, hashes the new password, and
// consumes the code together with the hash update in one store
// transaction. The consume step never trusts the preceding verify: the
// code may expire or be superseded between the two calls.
func (s *AuthService) ResetPassword(ctx context.Context, userID, code, newPassword string) error {
	valid, err := s.codes.VerifyCode(ctx, userID, code)
	if err != nil {
		return apperr.Internal("Failed to verify code", err)
	}
	if !valid {
		return apperr.Validation("Invalid or expired verification code")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperr.Internal("Failed to process password", err)
	}

	ok, err := s.codes.ConsumeAndResetPassword(ctx, userID, code, hash)
	if err != nil {
		return apperr.Internal("Failed to reset password", err)
	}
	if !ok {
		return apperr.NotFound("Failed to update password. User not found")
	}
	return nil
}

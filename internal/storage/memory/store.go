// Package memory holds an in-memory storage.Store with the same
// transactional semantics as the Postgres implementation. It backs unit
// tests and local development without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campuskit/campus-auth/internal/models"
	"github.com/campuskit/campus-auth/internal/storage"
)

var _ storage.Store = (*Store)(nil)

type resetCode struct {
	code      string
	expiresAt time.Time
	consumed  bool
}

// Store keeps users and reset codes behind a single mutex, giving the
// invalidate+insert and check+consume+update pairs the same atomicity the
// Postgres transactions provide.
type Store struct {
	mu    sync.RWMutex
	users map[string]models.User
	codes map[string]*resetCode
}

func New() *Store {
	return &Store{
		users: make(map[string]models.User),
		codes: make(map[string]*resetCode),
	}
}

// AddUser seeds an account. Provisioning is out of scope for the service
// itself, so only tests and dev tooling call this.
func (s *Store) AddUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.UserID] = u
}

func (s *Store) FindUserForLogin(_ context.Context, userID string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (s *Store) ReplaceResetCode(_ context.Context, userID, code string, expiresAt time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return "", storage.ErrNotFound
	}
	s.codes[userID] = &resetCode{code: code, expiresAt: expiresAt}
	return u.MobileNumber, nil
}

func (s *Store) CheckResetCode(_ context.Context, userID, code string, now time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.codeMatches(userID, code, now), nil
}

func (s *Store) ConsumeResetCodeAndUpdatePassword(_ context.Context, userID, code, passwordHash string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.codeMatches(userID, code, now) {
		return false, nil
	}
	u, ok := s.users[userID]
	if !ok {
		return false, nil
	}
	s.codes[userID].consumed = true
	u.PasswordHash = passwordHash
	u.UpdatedAt = now
	s.users[userID] = u
	return true, nil
}

// codeMatches mirrors the SQL predicate: exact string equality, unconsumed,
// and strictly now < expires_at. Callers hold the lock.
func (s *Store) codeMatches(userID, code string, now time.Time) bool {
	c, ok := s.codes[userID]
	return ok && !c.consumed && c.code == code && now.Before(c.expiresAt)
}

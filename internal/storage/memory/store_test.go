package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/campuskit/campus-auth/internal/models"
	"github.com/campuskit/campus-auth/internal/storage"
)

func seeded() *Store {
	s := New()
	s.AddUser(models.User{
		UserID:       "U100",
		UserType:     "employee",
		MobileNumber: "+15551234567",
		PasswordHash: "old-hash",
	})
	return s
}

func TestReplaceResetCode_UnknownUser(t *testing.T) {
	t.Parallel()

	s := New()
	_, err := s.ReplaceResetCode(context.Background(), "ghost", "123456", time.Now().Add(time.Minute))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("want storage.ErrNotFound, got %v", err)
	}
}

func TestConsume_ExactlyOneWinnerUnderConcurrency(t *testing.T) {
	t.Parallel()

	s := seeded()
	ctx := context.Background()
	now := time.Now()

	if _, err := s.ReplaceResetCode(ctx, "U100", "482913", now.Add(5*time.Minute)); err != nil {
		t.Fatalf("ReplaceResetCode error: %v", err)
	}

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.ConsumeResetCodeAndUpdatePassword(ctx, "U100", "482913", "new-hash", now)
			if err != nil {
				t.Errorf("consume error: %v", err)
				return
			}
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	if wins != 1 {
		t.Fatalf("code consumed %d times, want exactly 1", wins)
	}
}

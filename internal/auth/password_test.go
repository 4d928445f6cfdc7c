package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "hunter22" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected hash %q", hash)
	}

	if !CheckPassword("hunter22", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("hunter23", hash) {
		t.Fatal("wrong password accepted")
	}
	if CheckPassword("hunter22", "not-a-bcrypt-hash") {
		t.Fatal("garbage hash accepted")
	}
}

package auth

import (
	"testing"
	"time"
)

func TestGenerateAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", "campus-auth", 24*time.Hour)

	tok, err := tm.Generate("E1001", "employee")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	claims, err := tm.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "E1001" || claims.UserType != "employee" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.Issuer != "campus-auth" {
		t.Fatalf("issuer mismatch: %q", claims.Issuer)
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 24*time.Hour {
		t.Fatalf("token lifetime = %s, want 24h", lifetime)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", "campus-auth", -1*time.Second)
	tok, err := tm.Generate("S2002", "student")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := tm.Verify(tok); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", "campus-auth", time.Hour).Generate("E1", "employee")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := NewTokenManager("wrong-secret", "campus-auth", time.Hour).Verify(tok); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", "campus-auth", time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := tm.Verify(tok); err == nil {
			t.Fatalf("expected error for token %q, got nil", tok)
		}
	}
}

func TestExtractFromHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"Bearer  padded ", "padded", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Bearer    ", "", false},
		{"bearer abc", "", false},
		{"Token abc", "", false},
	}
	for _, tt := range tests {
		got, ok := ExtractFromHeader(tt.header)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExtractFromHeader(%q) = (%q, %v), want (%q, %v)", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}

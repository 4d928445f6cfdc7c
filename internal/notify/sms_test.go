package notify

import (
	"context"
	"strings"
	"testing"
)

func TestFormatPhoneNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"+15551234567", "+15551234567"},
		{"15551234567", "+15551234567"},
		{"555-123-4567", "+5551234567"},
		{"(555) 123 4567", "+5551234567"},
	}
	for _, tt := range tests {
		if got := FormatPhoneNumber(tt.in); got != tt.want {
			t.Errorf("FormatPhoneNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResetCodeMessage(t *testing.T) {
	t.Parallel()

	msg := ResetCodeMessage("482913")
	if !strings.Contains(msg, "482913") {
		t.Fatalf("message %q does not contain the code", msg)
	}
	if !strings.Contains(msg, "5 minutes") {
		t.Fatalf("message %q does not mention the expiry window", msg)
	}
}

func TestDisabledSenderAlwaysFails(t *testing.T) {
	t.Parallel()

	if _, err := (Disabled{}).Send(context.Background(), "+15551234567", "hi"); err == nil {
		t.Fatal("Disabled sender returned no error")
	}
}

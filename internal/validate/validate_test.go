package validate

import (
	"strings"
	"testing"
)

func TestUserID(t *testing.T) {
	t.Parallel()

	if !UserID("U100") {
		t.Error("plain id rejected")
	}
	if !UserID(strings.Repeat("a", 255)) {
		t.Error("255-char id rejected")
	}
	if UserID(strings.Repeat("a", 256)) {
		t.Error("256-char id accepted")
	}
	if UserID("") || UserID("   ") {
		t.Error("blank id accepted")
	}
}

func TestCode(t *testing.T) {
	t.Parallel()

	valid := []string{"000000", "482913", "999999"}
	for _, c := range valid {
		if !Code(c) {
			t.Errorf("Code(%q) = false, want true", c)
		}
	}
	invalid := []string{"", "12345", "1234567", "12a456", "12 456", "-12345", "１２３４５６"}
	for _, c := range invalid {
		if Code(c) {
			t.Errorf("Code(%q) = true, want false", c)
		}
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()

	if !Password("newpass1") {
		t.Error("8-char password rejected")
	}
	if Password("short7c") {
		t.Error("7-char password accepted")
	}
}

func TestMobileNumber(t *testing.T) {
	t.Parallel()

	valid := []string{"+15551234567", "15551234567", "+44 7700 900-123"}
	for _, m := range valid {
		if !MobileNumber(m) {
			t.Errorf("MobileNumber(%q) = false, want true", m)
		}
	}
	invalid := []string{"", "12345", "+0123456789", "phone"}
	for _, m := range invalid {
		if MobileNumber(m) {
			t.Errorf("MobileNumber(%q) = true, want false", m)
		}
	}
}

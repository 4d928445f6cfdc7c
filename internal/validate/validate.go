// Package validate holds request format checks. Handlers run these before
// any store access; the service layer may assume well-formed input.
package validate

import (
	"regexp"
	"strings"
)

var (
	codePattern   = regexp.MustCompile(`^\d{6}$`)
	mobilePattern = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)
)

// UserID accepts any non-blank identifier up to 255 characters.
func UserID(id string) bool {
	return strings.TrimSpace(id) != "" && len(id) <= 255
}

// Code accepts exactly six decimal digits. No normalization: "12a456" and
// "12345" both fail.
func Code(code string) bool {
	return codePattern.MatchString(code)
}

// Password enforces the minimum length only.
func Password(password string) bool {
	return len(password) >= 8
}

// MobileNumber does a loose E.164 shape check after stripping separators.
func MobileNumber(number string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(number)
	return mobilePattern.MatchString(cleaned)
}

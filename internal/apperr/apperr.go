// Package apperr carries status-coded errors from the service layer to the
// HTTP boundary, where they are converted to responses exactly once.
package apperr

import (
	"errors"
	"net/http"
)

// Error pairs a client-facing message with an HTTP status. Err holds the
// underlying cause for internal logging and is never serialized.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation flags malformed or missing input (400).
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized flags bad credentials (401).
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NotFound flags an absent resource (404).
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Internal wraps a store/hasher/signing failure (500).
func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// From extracts the *Error in err's chain, or maps anything else to a
// generic 500 so internal detail never reaches a response body.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("Internal server error", err)
}

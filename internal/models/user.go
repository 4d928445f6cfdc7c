package models

import "time"

// User captures the credential record for a campus account. Accounts are
// provisioned externally; this service only ever rewrites PasswordHash.
type User struct {
	UserID       string    `json:"user_id"`
	UserType     string    `json:"user_type"`
	MobileNumber string    `json:"mobile_number"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

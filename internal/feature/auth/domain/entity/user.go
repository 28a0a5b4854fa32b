// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered author account.
// The email doubles as the login name; it is the only identity exposed to
// other features.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never persisted.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user registered.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

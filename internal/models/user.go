package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database.
// PasswordHash is nil for accounts created through OAuth.
type User struct {
	ID                uuid.UUID `json:"id" db:"id"`
	Username          string    `json:"username" db:"username"`
	Email             string    `json:"email" db:"email"`
	PasswordHash      *string   `json:"-" db:"password_hash"`
	ProfilePicture    *string   `json:"profile_picture,omitempty" db:"profile_picture"`
	EmailVerified     bool      `json:"email_verified" db:"email_verified"`
	VerificationToken *string   `json:"-" db:"verification_token"`
	XP                int64     `json:"xp" db:"xp"`
	OAuthProvider     *string   `json:"oauth_provider,omitempty" db:"oauth_provider"`
	OAuthID           *string   `json:"-" db:"oauth_id"`
	IsAdmin           bool      `json:"is_admin" db:"is_admin"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

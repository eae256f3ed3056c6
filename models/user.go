package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user. It is assigned once at
	// registration and never changes afterwards.
	ID uuid.UUID `json:"-"`

	// Username is the unique public name of the user.
	Username string `json:"username"`

	// Email is the unique e-mail address the user authenticates with.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// Bio is an optional free-form profile description.
	Bio string `json:"bio"`

	// Image is an optional URL of the user's profile picture.
	Image string `json:"image"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial profile update. A nil field leaves the
// corresponding column untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	Bio      *string
	Image    *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Bio == nil && u.Image == nil
}

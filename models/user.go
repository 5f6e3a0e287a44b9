package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user (UUID).
	// Tokens are bound to this value, so it survives email changes.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique user email used as the primary lookup key
	// during authentication. Uniqueness is case-sensitive.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last modification of the account.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPatch is a partial update of a user record. Nil fields are left
// untouched; non-nil fields overwrite the stored value.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
}

// Empty reports whether the patch carries no fields at all.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil
}

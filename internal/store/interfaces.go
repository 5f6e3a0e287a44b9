package store

import (
	"context"

	"github.com/MKhiriev/mock-user-auth/models"
)

// UserRepository is the persistence boundary for user accounts. Backends
// must enforce email uniqueness at write time: concurrent Create calls for
// the same email result in exactly one success, all others failing with
// [ErrEmailAlreadyExists].
type UserRepository interface {
	// Create persists a new user and returns the stored record with
	// server-assigned fields (ID, CreatedAt) populated.
	Create(ctx context.Context, user models.User) (models.User, error)

	// FindByEmail returns the user owning the given email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID returns the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id string) (models.User, error)

	// Update replaces the mutable fields (Name, Email, PasswordHash) of the
	// record identified by user.ID. An email collision with another record
	// fails with ErrEmailAlreadyExists, an unknown ID with ErrUserNotFound.
	Update(ctx context.Context, user models.User) (models.User, error)

	// Delete removes the record with the given ID, or ErrUserNotFound.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every user record and returns how many were removed.
	// The wipe is atomic with respect to concurrent Create calls: an
	// in-flight registration either completes before the wipe or observes
	// the empty store after it, never a partial state.
	DeleteAll(ctx context.Context) (int64, error)
}

// ErrorClassificator translates driver-level SQL errors into the domain
// conditions the repository cares about. Each SQL backend supplies its own
// implementation.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err is the backend's unique
	// constraint violation (duplicate email).
	IsUniqueViolation(err error) bool
}

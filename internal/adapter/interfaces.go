// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the user account REST API.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/mock-user-auth/models"
)

// ServerAdapter defines transport-agnostic communication with the user
// account service. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Authenticate.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account from name, email, and password.
	// Returns an error if the request fails or the server rejects the
	// registration (duplicate email, validation failure).
	Register(ctx context.Context, name, email, password string) error

	// Authenticate exchanges email and password for a session token. On
	// success the token is stored via SetToken and returned.
	Authenticate(ctx context.Context, email, password string) (string, error)

	// GetUser fetches the authenticated user's own profile.
	GetUser(ctx context.Context) (models.ProfileResponse, error)

	// UpdateUser applies a partial update to the authenticated user's
	// account. Nil patch fields are not sent.
	UpdateUser(ctx context.Context, patch models.UserPatch) error

	// DeleteUser removes the authenticated user's account. The stored token
	// is cleared on success because the server revokes it.
	DeleteUser(ctx context.Context) error

	// DeleteAllUsers wipes every account using the administrative key and
	// returns how many records were removed.
	DeleteAllUsers(ctx context.Context, adminKey string) (int64, error)
}

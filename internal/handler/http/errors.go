// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header is present
	// but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// User-visible response messages promised by the API contract. The exact
// wording matters: clients assert on these strings.
const (
	msgUserRegistered    = "User registered with success"
	msgUserUpdated       = "User updated with success!"
	msgUserDeleted       = "User deleted with success"
	msgAllUsersDeleted   = "Users deleted with success"
	msgMissingFields     = "Missing required fields"
	msgAlreadyRegistered = "User already registered"
	msgInvalidEmail      = "Invalid email format"
	msgPasswordTooShort  = "Password must be at least 6 characters"
	msgBadCredentials    = "Incorrect email or password"
	msgNoFieldsToUpdate  = "No fields to update"
	msgUnauthorized      = "Unauthorized"
	msgInvalidAdminKey   = "Invalid admin key"
)

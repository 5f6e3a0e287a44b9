// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators encodes the field rules of the user-account contract:
// required-field presence and typing, email format, and password policy.
//
// Validation is deliberately ordered. Required-field defects are detected
// first, before format or length rules, and before any uniqueness or
// credential check happens at the store layer. Handlers rely on this order
// to produce the right status code for each failure class.
package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/mock-user-auth/models"
)

// MinPasswordLength is the minimum accepted password length, in characters
// rather than bytes, after trimming.
const MinPasswordLength = 6

// emailPattern accepts local@domain.tld with no whitespace or extra "@".
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Registration is a normalized, validated registration input. All fields
// are trimmed and non-empty.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// UserValidator validates raw request payloads for the registration,
// authentication, and update operations. It is stateless and safe for
// concurrent use.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator.
func NewUserValidator() *UserValidator {
	return &UserValidator{}
}

// ValidateRegistration checks a raw registration payload and returns the
// normalized field values.
//
// Check order: required fields (presence, string typing, non-whitespace)
// first, then email format, then password length. Unknown extra fields have
// already been dropped during JSON decoding and never produce an error.
//
// Returns:
//   - ErrMissingFields if any of name/email/password is absent, null,
//     non-string, or whitespace-only;
//   - ErrInvalidEmailFormat if the email does not match the address pattern;
//   - ErrPasswordTooShort if the trimmed password has fewer than
//     MinPasswordLength characters.
func (v *UserValidator) ValidateRegistration(payload models.UserPayload) (Registration, error) {
	name, ok := stringField(payload.Name)
	if !ok {
		return Registration{}, ErrMissingFields
	}

	email, ok := stringField(payload.Email)
	if !ok {
		return Registration{}, ErrMissingFields
	}

	password, ok := stringField(payload.Password)
	if !ok {
		return Registration{}, ErrMissingFields
	}

	if !emailPattern.MatchString(email) {
		return Registration{}, ErrInvalidEmailFormat
	}

	if utf8.RuneCountInString(password) < MinPasswordLength {
		return Registration{}, ErrPasswordTooShort
	}

	return Registration{Name: name, Email: email, Password: password}, nil
}

// ValidateCredentials checks a raw authentication payload and returns the
// normalized email/password pair.
//
// Only presence and typing are enforced here: format and length rules apply
// to registration, not login, so a stored account always stays reachable.
func (v *UserValidator) ValidateCredentials(payload models.CredentialsPayload) (models.Credentials, error) {
	email, ok := stringField(payload.Email)
	if !ok {
		return models.Credentials{}, ErrMissingFields
	}

	password, ok := stringField(payload.Password)
	if !ok {
		return models.Credentials{}, ErrMissingFields
	}

	return models.Credentials{Email: email, Password: password}, nil
}

// ValidatePatch checks a raw partial-update payload and returns the patch
// with only the supplied fields set.
//
// A field that is absent or JSON null is simply not part of the patch.
// A field that is present must satisfy the registration rules for that
// field: any non-string or whitespace-only value fails with
// ErrMissingFields, a present email must match the address pattern, and a
// present password must satisfy the length policy. A patch with no fields
// at all fails with ErrNoFieldsToUpdate.
func (v *UserValidator) ValidatePatch(payload models.UserPayload) (models.UserPatch, error) {
	var patch models.UserPatch

	if payload.Name != nil {
		name, ok := stringField(payload.Name)
		if !ok {
			return models.UserPatch{}, ErrMissingFields
		}
		patch.Name = &name
	}

	if payload.Email != nil {
		email, ok := stringField(payload.Email)
		if !ok {
			return models.UserPatch{}, ErrMissingFields
		}
		if !emailPattern.MatchString(email) {
			return models.UserPatch{}, ErrInvalidEmailFormat
		}
		patch.Email = &email
	}

	if payload.Password != nil {
		password, ok := stringField(payload.Password)
		if !ok {
			return models.UserPatch{}, ErrMissingFields
		}
		if utf8.RuneCountInString(password) < MinPasswordLength {
			return models.UserPatch{}, ErrPasswordTooShort
		}
		patch.Password = &password
	}

	if patch.Empty() {
		return models.UserPatch{}, ErrNoFieldsToUpdate
	}

	return patch, nil
}

// stringField normalizes a raw decoded JSON value into a trimmed string.
// ok is false when the value is not a string or trims to empty.
func stringField(value any) (string, bool) {
	s, isString := value.(string)
	if !isString {
		return "", false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	return s, true
}

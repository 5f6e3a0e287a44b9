package validators

import "errors"

var (
	// ErrMissingFields covers every defect of a required credential field:
	// absent, JSON null, a non-string JSON value, or whitespace-only after
	// trimming. The contract folds all of these into one error class.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidEmailFormat is returned when a present, well-typed email
	// does not match the accepted address pattern.
	ErrInvalidEmailFormat = errors.New("invalid email format")

	// ErrPasswordTooShort is returned when a present, well-typed password
	// is shorter than MinPasswordLength after trimming.
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrNoFieldsToUpdate is returned when a patch carries none of the
	// updatable fields.
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

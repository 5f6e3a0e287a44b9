package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was supplied
	// by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrMissingAdminKey indicates that no administrative bulk-delete key
	// was supplied by any configuration source.
	ErrMissingAdminKey = errors.New("admin key is required")
	// ErrMissingDBDriver indicates that a database DSN was supplied without
	// naming the SQL driver to open it with.
	ErrMissingDBDriver = errors.New("db driver is required when a DSN is set")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Secrets never have built-in defaults, so both the token signing key and
// the admin bulk-delete key must arrive from env, flags, or the JSON file.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Auth.AdminKey == "" {
		return ErrMissingAdminKey
	}

	if cfg.Storage.DB.DSN != "" && cfg.Storage.DB.Driver == "" {
		return ErrMissingDBDriver
	}

	return nil
}

package store

import (
	"database/sql"

	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/migrations"
	"github.com/Masterminds/squirrel"
)

// DB wraps a database/sql connection together with the pieces that differ
// between SQL backends: the squirrel placeholder format, the goose dialect
// name, and the driver-specific error classification.
type DB struct {
	*sql.DB
	sb                 squirrel.StatementBuilderType
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded goose migrations for this backend's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

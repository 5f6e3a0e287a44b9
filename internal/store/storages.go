package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mock-user-auth/internal/config"
	"github.com/MKhiriev/mock-user-auth/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages selects and constructs the persistence backend from
// configuration. An empty DSN selects the in-memory store; otherwise the
// configured SQL backend is opened and migrated.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		return &Storages{UserRepository: NewMemoryUserRepository(log)}, nil
	}

	var db *DB
	var err error
	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unknown db driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{UserRepository: NewUserRepository(db, log)}, nil
}

package service

import (
	"github.com/MKhiriev/mock-user-auth/internal/config"
	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService

	// Sessions is the shared token session registry. It is exported so
	// that background workers can sweep expired entries out of it.
	Sessions *SessionRegistry
}

// NewServices wires the service layer. Both services share one
// SessionRegistry so that deletions performed through UserService revoke
// tokens verified through AuthService.
func NewServices(storages store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	sessions := NewSessionRegistry()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, sessions, cfg.Auth, logger),
		UserService: NewUserService(storages.UserRepository, sessions, cfg.Auth, logger),
		Sessions:    sessions,
	}
}

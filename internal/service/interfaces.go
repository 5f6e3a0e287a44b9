package service

import (
	"context"

	"github.com/MKhiriev/mock-user-auth/internal/validators"
	"github.com/MKhiriev/mock-user-auth/models"
)

type AuthService interface {
	Register(ctx context.Context, registration validators.Registration) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	Get(ctx context.Context, userID string) (models.User, error)
	Update(ctx context.Context, userID string, patch models.UserPatch) (models.User, error)
	Delete(ctx context.Context, userID string) error
	DeleteAll(ctx context.Context, adminKey string) (int64, error)
}

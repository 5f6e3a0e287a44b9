package http

import (
	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/service"
	"github.com/MKhiriev/mock-user-auth/internal/validators"
)

type Handler struct {
	services *service.Services

	validator *validators.UserValidator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

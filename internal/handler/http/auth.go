package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/service"
	"github.com/MKhiriev/mock-user-auth/internal/store"
	"github.com/MKhiriev/mock-user-auth/internal/utils"
	"github.com/MKhiriev/mock-user-auth/internal/validators"
	"github.com/MKhiriev/mock-user-auth/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// A body that does not decode carries no usable fields, so it lands in
	// the missing-fields class rather than a bare 400.
	var payload models.UserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgMissingFields}, http.StatusUnauthorized)
		return
	}

	registration, err := h.validator.ValidateRegistration(payload)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrMissingFields):
			log.Err(err).Msg("registration with missing fields")
			utils.WriteJSON(w, models.MessageResponse{Message: msgMissingFields}, http.StatusUnauthorized)
			return
		case errors.Is(err, validators.ErrInvalidEmailFormat):
			log.Err(err).Msg("registration with malformed email")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidEmail}, http.StatusBadRequest)
			return
		case errors.Is(err, validators.ErrPasswordTooShort):
			log.Err(err).Msg("registration with short password")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgPasswordTooShort}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected validation error during registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	registeredUser, err := h.services.AuthService.Register(ctx, registration)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("email", registration.Email).Msg("email already registered")
			utils.WriteJSON(w, models.MessageResponse{Message: msgAlreadyRegistered}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.MessageResponse{Message: msgUserRegistered}, http.StatusOK)
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgMissingFields}, http.StatusBadRequest)
		return
	}

	credentials, err := h.validator.ValidateCredentials(payload)
	if err != nil {
		log.Err(err).Msg("authentication with missing fields")
		utils.WriteJSON(w, models.MessageResponse{Message: msgMissingFields}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncorrectCredentials):
			log.Err(err).Str("email", credentials.Email).Msg("incorrect email or password")
			utils.WriteJSON(w, models.MessageResponse{Message: msgBadCredentials}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during authentication")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", token.UserID).Msg("user successfully authenticated")

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

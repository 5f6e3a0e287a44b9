package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/store"
	"github.com/MKhiriev/mock-user-auth/internal/utils"
	"github.com/MKhiriev/mock-user-auth/internal/validators"
	"github.com/MKhiriev/mock-user-auth/models"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: msgUnauthorized}, http.StatusForbidden)
		return
	}

	foundUser, err := h.services.UserService.Get(ctx, userID)
	if err != nil {
		// The account can vanish between token verification and this lookup.
		if errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("id", userID).Msg("authenticated user no longer exists")
			utils.WriteJSON(w, models.MessageResponse{Message: msgUnauthorized}, http.StatusForbidden)
			return
		}
		log.Err(err).Str("id", userID).Msg("unexpected error occurred during profile lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		ID:    foundUser.ID,
		Name:  foundUser.Name,
		Email: foundUser.Email,
	}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: msgUnauthorized}, http.StatusForbidden)
		return
	}

	var payload models.UserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgMissingFields}, http.StatusBadRequest)
		return
	}

	patch, err := h.validator.ValidatePatch(payload)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrMissingFields):
			log.Err(err).Msg("patch with malformed fields")
			utils.WriteJSON(w, models.MessageResponse{Message: msgMissingFields}, http.StatusBadRequest)
			return
		case errors.Is(err, validators.ErrInvalidEmailFormat):
			log.Err(err).Msg("patch with malformed email")
			utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidEmail}, http.StatusBadRequest)
			return
		case errors.Is(err, validators.ErrPasswordTooShort):
			log.Err(err).Msg("patch with short password")
			utils.WriteJSON(w, models.MessageResponse{Message: msgPasswordTooShort}, http.StatusBadRequest)
			return
		case errors.Is(err, validators.ErrNoFieldsToUpdate):
			log.Err(err).Msg("patch without any fields")
			utils.WriteJSON(w, models.MessageResponse{Message: msgNoFieldsToUpdate}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected validation error during update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	updatedUser, err := h.services.UserService.Update(ctx, userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("id", userID).Msg("patch email already taken")
			utils.WriteJSON(w, models.MessageResponse{Message: msgAlreadyRegistered}, http.StatusUnauthorized)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("id", userID).Msg("authenticated user no longer exists")
			utils.WriteJSON(w, models.MessageResponse{Message: msgUnauthorized}, http.StatusForbidden)
			return
		default:
			log.Err(err).Str("id", userID).Msg("unexpected error occurred during user update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", updatedUser.ID).Msg("user updated")

	utils.WriteJSON(w, models.MessageResponse{Message: msgUserUpdated}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: msgUnauthorized}, http.StatusForbidden)
		return
	}

	if err := h.services.UserService.Delete(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("id", userID).Msg("authenticated user no longer exists")
			utils.WriteJSON(w, models.MessageResponse{Message: msgUnauthorized}, http.StatusForbidden)
			return
		}
		log.Err(err).Str("id", userID).Msg("unexpected error occurred during user deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("id", userID).Msg("user deleted")

	utils.WriteJSON(w, models.MessageResponse{Message: msgUserDeleted}, http.StatusOK)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/service"
	"github.com/MKhiriev/mock-user-auth/internal/utils"
	"github.com/MKhiriev/mock-user-auth/models"
)

// deleteAllUsers wipes every account. The caller authorizes with the
// key_admin body field instead of a bearer token; a missing or wrong key
// fails with 403 before any state changes.
func (h *Handler) deleteAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.AdminPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidAdminKey}, http.StatusForbidden)
		return
	}

	adminKey, _ := payload.KeyAdmin.(string)

	count, err := h.services.UserService.DeleteAll(ctx, adminKey)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAdminKey) {
			log.Err(err).Msg("bulk delete with missing or wrong admin key")
			utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidAdminKey}, http.StatusForbidden)
			return
		}
		log.Err(err).Msg("unexpected error occurred during bulk deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Int64("count", count).Msg("all users deleted")

	utils.WriteJSON(w, models.BulkDeleteResponse{
		Message: msgAllUsersDeleted,
		Count:   count,
	}, http.StatusOK)
}

package delete_blocker

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonique/booking-service/internal/api/handlers"
	"github.com/salonique/booking-service/internal/api/middleware"
	"github.com/salonique/booking-service/internal/service/availability"
)

const (
	msgInvalidBlockerID = "некорректный ID блокировки"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "блокировка не найдена"
	msgForbidden        = "доступ запрещен"
)

// DeleteBlockerResponse HTTP response model
type DeleteBlockerResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/blockers/{blockerId}
// Удаляет всю визуальную группу, в которую входит блокировка.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockerIDStr := vars["blockerId"]

	blockerID, err := strconv.ParseInt(blockerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blockers/{id} - Invalid blocker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /blockers/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	deletedCount, err := h.service.DeleteBlockerGroup(r.Context(), blockerID, userID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrBlockerNotFound):
			h.logger.Warn("DELETE /blockers/{id} - Blocker not found: blocker_id=%d", blockerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("DELETE /blockers/{id} - Access denied: blocker_id=%d, user_id=%d", blockerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /blockers/{id} - Failed to delete blockers: blocker_id=%d, error=%v",
				blockerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blockers/{id} - Blocker group deleted successfully: blocker_id=%d, deleted=%d",
		blockerID, deletedCount)
	handlers.RespondJSON(w, http.StatusOK, DeleteBlockerResponse{DeletedCount: deletedCount})
}

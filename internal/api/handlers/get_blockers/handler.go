package get_blockers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/salonique/booking-service/internal/api/handlers"
	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/internal/service/availability/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgMissingPeriod         = "параметры startDate и endDate обязательны"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod         = "дата конца периода раньше даты начала"
)

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

// Handle GET /api/v1/professionals/{professionalId}/blockers
// Query params: startDate (required), endDate (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/blockers - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /professionals/{id}/blockers - Missing period")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/blockers - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/blockers - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if endDate.Before(startDate) {
		h.logger.Warn("GET /professionals/{id}/blockers - End date before start date: professional_id=%d", professionalID)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	serviceReq := &models.GetBlockersRequest{
		ProfessionalID: professionalID,
		StartDate:      startDate,
		EndDate:        endDate,
	}

	result, err := h.service.GetBlockers(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /professionals/{id}/blockers - Failed to get blockers: professional_id=%d, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professionals/{id}/blockers - Blockers retrieved successfully: professional_id=%d, groups=%d",
		professionalID, len(result.Groups))
	handlers.RespondJSON(w, http.StatusOK, result)
}

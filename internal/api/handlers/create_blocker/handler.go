package create_blocker

import (
	"errors"
	"net/http"

	"github.com/salonique/booking-service/internal/api/handlers"
	"github.com/salonique/booking-service/internal/api/middleware"
	createBlocker "github.com/salonique/booking-service/internal/usecase/create_blocker"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgProfessionalNotFound = "мастер не найден"
	msgForbidden            = "доступ запрещен"
	msgDateRangeOrder       = "дата конца диапазона раньше даты начала"
	msgTimeOrder            = "время конца блокировки раньше времени начала"
)

type Handler struct {
	useCase CreateBlockerUseCase
	logger  Logger
}

func NewHandler(useCase CreateBlockerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/blockers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blockers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /blockers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /blockers - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBlocker.ErrProfessionalNotFound):
			h.logger.Warn("POST /blockers - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createBlocker.ErrAccessDenied):
			h.logger.Warn("POST /blockers - Access denied: professional_id=%d, user_id=%d",
				req.ProfessionalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBlocker.ErrDateRangeOrder):
			h.logger.Warn("POST /blockers - Invalid date range: professional_id=%d", req.ProfessionalID)
			handlers.RespondBadRequest(w, msgDateRangeOrder)

		case errors.Is(err, createBlocker.ErrTimeOrder):
			h.logger.Warn("POST /blockers - Invalid time order: professional_id=%d", req.ProfessionalID)
			handlers.RespondBadRequest(w, msgTimeOrder)

		case errors.Is(err, createBlocker.ErrInvalidInput):
			h.logger.Warn("POST /blockers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /blockers - Failed to create blockers: professional_id=%d, error=%v",
				req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /blockers - Blockers created successfully: professional_id=%d, count=%d",
		result.ProfessionalID, len(result.BlockerIDs))
	handlers.RespondJSON(w, http.StatusCreated, response)
}

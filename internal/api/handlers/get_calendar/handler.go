package get_calendar

import (
	"errors"
	"net/http"

	"github.com/salonique/booking-service/internal/api/handlers"
	getCalendar "github.com/salonique/booking-service/internal/usecase/get_calendar"
)

const (
	msgMissingView            = "параметр view обязателен"
	msgMissingDate            = "параметр date обязателен"
	msgMissingProfessionalIDs = "параметр professionalIds обязателен"
	msgInvalidParams          = "некорректные параметры запроса"
	msgInvalidView            = "некорректный вид календаря, ожидается week или month"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: view (week|month), date (YYYY-MM-DD), professionalIds ("1,2,3")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	viewStr := query.Get("view")
	if viewStr == "" {
		h.logger.Warn("GET /calendar - Missing view")
		handlers.RespondBadRequest(w, msgMissingView)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /calendar - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	professionalIDsStr := query.Get("professionalIds")
	if professionalIDsStr == "" {
		h.logger.Warn("GET /calendar - Missing professional IDs")
		handlers.RespondBadRequest(w, msgMissingProfessionalIDs)
		return
	}

	useCaseReq, err := ToUseCaseRequest(viewStr, dateStr, professionalIDsStr)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidView):
			h.logger.Warn("GET /calendar - Invalid view: %s", viewStr)
			handlers.RespondBadRequest(w, msgInvalidView)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: view=%s, error=%v", viewStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built successfully: view=%s, professionals=%d",
		viewStr, len(useCaseReq.ProfessionalIDs))
	handlers.RespondJSON(w, http.StatusOK, result)
}

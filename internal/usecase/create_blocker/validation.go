package create_blocker

import (
	"fmt"
	"unicode/utf8"

	"github.com/salonique/booking-service/internal/domain"
)

// validateRequest валидирует запрос на создание блокировки.
// Порядок проверок фиксирован: сначала диапазон дат, затем времена.
// Инверсия времен проверяется только для однодневной блокировки с обоими
// временами — многодневные диапазоны эту проверку не проходят.
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return ErrDateRangeOrder
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}
	}
	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
		}
	}

	// Указано ровно одно из двух времен — блокировка либо частичная
	// с обоими временами, либо на весь день без обоих
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return fmt.Errorf("%w: start and end times must be provided together", ErrInvalidInput)
	}

	singleDay := req.StartDate.Equal(req.EndDate) ||
		(req.StartDate.Year() == req.EndDate.Year() && req.StartDate.YearDay() == req.EndDate.YearDay())
	if singleDay && req.StartTime != nil && req.EndTime != nil {
		if !req.StartTime.IsBefore(*req.EndTime) {
			return ErrTimeOrder
		}
	}

	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}

package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/salonique/booking-service/internal/domain"
)

// UseCase use case построения календарной сетки
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	blockerRepo   BlockerRepository
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	blockerRepo BlockerRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		blockerRepo:   blockerRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute строит недельную или месячную сетку для набора мастеров.
// Ошибкой завершаются только отказы хранилища: пробелы в данных
// (нет расписания, каталог не ответил) дают нейтральные ячейки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: view=%s, date=%s, professionals=%d",
		req.View, req.Date.Format(domain.DateFormat), len(req.ProfessionalIDs))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	var periodStart, periodEnd time.Time
	switch req.View {
	case ViewWeek:
		periodStart = weekStart(req.Date)
		periodEnd = periodStart.AddDate(0, 0, 6)
	case ViewMonth:
		periodStart, periodEnd = monthBounds(req.Date)
	}

	professionals, err := uc.collectData(ctx, req.ProfessionalIDs, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	resp := &Response{View: req.View}
	switch req.View {
	case ViewWeek:
		resp.Week = buildWeekView(periodStart, professionals)
	case ViewMonth:
		resp.Month = buildMonthView(req.Date, professionals)
	}

	uc.logger.Info("GetCalendar: built %s view for %d professionals", req.View, len(professionals))
	return resp, nil
}

// collectData собирает расписания, блокировки и записи мастеров за период
func (uc *UseCase) collectData(ctx context.Context, professionalIDs []int64, start, end time.Time) ([]professionalData, error) {
	schedules, err := uc.scheduleRepo.GetByProfessionalIDs(ctx, professionalIDs)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	blockers, err := uc.blockerRepo.GetByProfessionalsAndPeriod(ctx, professionalIDs, start, end)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get blockers: %v", err)
		return nil, fmt.Errorf("%w: failed to get blockers: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetActiveByProfessionalsAndPeriod(ctx, professionalIDs, start, end)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	scheduleByProfessional := make(map[int64]map[domain.Weekday]*domain.WeeklySchedule)
	for _, s := range schedules {
		if scheduleByProfessional[s.ProfessionalID] == nil {
			scheduleByProfessional[s.ProfessionalID] = make(map[domain.Weekday]*domain.WeeklySchedule)
		}
		scheduleByProfessional[s.ProfessionalID][s.DayOfWeek] = s
	}

	blockersByProfessional := make(map[int64]map[string][]*domain.TimeBlocker)
	for _, b := range blockers {
		if blockersByProfessional[b.ProfessionalID] == nil {
			blockersByProfessional[b.ProfessionalID] = make(map[string][]*domain.TimeBlocker)
		}
		key := b.Date.Format(domain.DateFormat)
		blockersByProfessional[b.ProfessionalID][key] = append(blockersByProfessional[b.ProfessionalID][key], b)
	}

	bookingsByProfessional := make(map[int64]map[string][]*domain.Booking)
	for _, b := range bookings {
		if bookingsByProfessional[b.ProfessionalID] == nil {
			bookingsByProfessional[b.ProfessionalID] = make(map[string][]*domain.Booking)
		}
		key := b.BookingDate.Format(domain.DateFormat)
		bookingsByProfessional[b.ProfessionalID][key] = append(bookingsByProfessional[b.ProfessionalID][key], b)
	}

	result := make([]professionalData, 0, len(professionalIDs))
	for _, id := range professionalIDs {
		data := professionalData{
			ID:       id,
			Schedule: scheduleByProfessional[id],
			Blockers: blockersByProfessional[id],
			Bookings: bookingsByProfessional[id],
		}

		// Имя мастера из каталога; недоступность каталога сетку не ломает
		if professional, err := uc.catalogClient.GetProfessional(ctx, id); err == nil {
			data.Name = professional.DisplayName
		} else {
			uc.logger.Warn("GetCalendar: could not resolve professional id=%d name: %v", id, err)
		}

		result = append(result, data)
	}

	return result, nil
}

// validateRequest валидирует запрос календарной сетки
func validateRequest(req *Request) error {
	if req.View != ViewWeek && req.View != ViewMonth {
		return ErrInvalidView
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.ProfessionalIDs) == 0 {
		return fmt.Errorf("%w: at least one professionalId is required", ErrInvalidInput)
	}

	for _, id := range req.ProfessionalIDs {
		if id <= 0 {
			return fmt.Errorf("%w: professionalIds must be positive", ErrInvalidInput)
		}
	}

	return nil
}

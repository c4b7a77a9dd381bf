package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonique/booking-service/internal/domain"
	scheduleRepo "github.com/salonique/booking-service/internal/infra/storage/schedule"
	catalogClient "github.com/salonique/booking-service/internal/integrations/catalogservice"
)

// UseCase use case для получения доступных слотов мастера
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

// Execute вычисляет доступные слоты мастера на дату для услуги.
// Результат детерминирован относительно расписания, блокировок и записей:
// прошедшие слоты сегодняшнего дня не отсекаются, это решает вызывающая сторона.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем мастера из каталога
	professional, err := uc.catalogClient.GetProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Получаем услугу и проверяем принадлежность салону мастера
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.VendorID != professional.VendorID {
		uc.logger.Warn("GetAvailableSlots: service id=%d belongs to vendor=%d, professional's vendor=%d",
			req.ServiceID, service.VendorID, professional.VendorID)
		return nil, ErrServiceMismatch
	}

	// 4. Получаем день расписания на дату запроса
	weekday := domain.WeekdayFromTime(req.Date)
	day, err := uc.scheduleRepo.GetByProfessionalAndDay(ctx, req.ProfessionalID, weekday)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// Расписание не создано — мастер недоступен, слотов нет
	if day == nil {
		uc.logger.Info("GetAvailableSlots: no schedule for professional=%d on %s", req.ProfessionalID, weekday)
		return uc.emptyResponse(req, service.DurationMinutes), nil
	}

	// 5. Получаем блокировки на дату
	blockers, err := uc.blockerRepo.GetByProfessionalAndPeriod(ctx, req.ProfessionalID, req.Date, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blockers: %v", err)
		return nil, fmt.Errorf("%w: failed to get blockers: %v", ErrInternal, err)
	}

	// 6. Получаем активные записи на дату
	filter := domain.ProfessionalBookingsFilter{
		ProfessionalID: req.ProfessionalID,
		StartDate:      &req.Date,
		EndDate:        &req.Date,
	}
	bookings, err := uc.bookingRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Вычисляем свободные слоты
	slots, err := domain.ResolveSlots(day, blockers, bookings, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: slot resolution failed: %v", err)
		return nil, fmt.Errorf("%w: slot resolution failed: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: resolved %d slots for professional=%d, service=%d, date=%s",
		len(slots), req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	resp := uc.emptyResponse(req, service.DurationMinutes)
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, Slot{StartTime: slot.StartTime, EndTime: slot.EndTime})
	}
	return resp, nil
}

func (uc *UseCase) emptyResponse(req *Request, durationMinutes int) *Response {
	return &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: durationMinutes,
		Slots:           []Slot{},
	}
}

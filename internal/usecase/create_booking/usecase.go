package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonique/booking-service/internal/domain"
	scheduleRepo "github.com/salonique/booking-service/internal/infra/storage/schedule"
	catalogClient "github.com/salonique/booking-service/internal/integrations/catalogservice"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	blockerRepo   BlockerRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	blockerRepo BlockerRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		blockerRepo:   blockerRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute создает запись клиента к мастеру.
// Проверка доступности слота и вставка идут в одной сериализуемой транзакции,
// записи дня блокируются FOR UPDATE — две конкурирующие записи на одно время
// не могут пройти одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, professional=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Запись в прошлое не принимается
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: past booking rejected: %v", err)
		return nil, err
	}

	// 3. Получаем мастера из каталога
	professional, err := uc.catalogClient.GetProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateBooking: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateBooking: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Получаем услугу и проверяем принадлежность салону мастера
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.VendorID != professional.VendorID {
		uc.logger.Warn("CreateBooking: service id=%d belongs to vendor=%d, professional's vendor=%d",
			req.ServiceID, service.VendorID, professional.VendorID)
		return nil, ErrServiceMismatch
	}

	// 5. Получаем имя клиента для денормализации.
	// Недоступность каталога запись не блокирует — имя останется пустым.
	customerName := ""
	customer, err := uc.catalogClient.GetCustomerWithGracefulDegradation(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Warn("CreateBooking: proceeding without customer name for customer=%d: %v", req.CustomerID, err)
	} else {
		customerName = customer.Name
	}

	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot end overflows the day: %v", err)
		return nil, ErrSlotNotAvailable
	}

	var result *domain.Booking

	// 6. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. День расписания на дату записи
		weekday := domain.WeekdayFromTime(req.Date)
		day, err := uc.scheduleRepo.GetByProfessionalAndDay(txCtx, req.ProfessionalID, weekday)
		if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 6.2. Блокировки на дату
		blockers, err := uc.blockerRepo.GetByProfessionalAndPeriod(txCtx, req.ProfessionalID, req.Date, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blockers: %v", err)
			return fmt.Errorf("%w: failed to get blockers: %v", ErrInternal, err)
		}

		// 6.3. Активные записи дня с блокировкой FOR UPDATE
		filter := domain.ProfessionalBookingsFilter{
			ProfessionalID: req.ProfessionalID,
			StartDate:      &req.Date,
			EndDate:        &req.Date,
		}
		bookings, err := uc.bookingRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.4. Запрошенный интервал должен быть среди вычислимых слотов
		slots, err := domain.ResolveSlots(day, blockers, bookings, service.DurationMinutes)
		if err != nil {
			uc.logger.Error("CreateBooking: slot resolution failed: %v", err)
			return fmt.Errorf("%w: slot resolution failed: %v", ErrInternal, err)
		}

		if !slotIsResolvable(slots, req.StartTime, endTime) {
			uc.logger.Warn("CreateBooking: slot %s-%s is not available for professional=%d on %s",
				req.StartTime, endTime, req.ProfessionalID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 6.5. Создаем запись с денормализацией данных услуги и клиента
		booking := &domain.Booking{
			CustomerID:     req.CustomerID,
			ProfessionalID: req.ProfessionalID,
			ServiceID:      req.ServiceID,
			BookingDate:    req.Date,
			StartTime:      req.StartTime,
			EndTime:        endTime,
			Status:         domain.BookingStatusPending,
			ServiceName:    service.Name,
			Price:          service.Price,
			CustomerName:   customerName,
			CustomerNotes:  req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		CustomerID:     result.CustomerID,
		ProfessionalID: result.ProfessionalID,
		ServiceID:      result.ServiceID,
		BookingDate:    result.BookingDate,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Status:         string(result.Status),
		ServiceName:    result.ServiceName,
		Price:          result.Price,
		CustomerName:   result.CustomerName,
		Notes:          result.CustomerNotes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

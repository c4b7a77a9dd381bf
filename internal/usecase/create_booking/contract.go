package create_booking

import (
	"context"
	"time"

	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/internal/integrations/catalogservice"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория недельных расписаний
type ScheduleRepository interface {
	GetByProfessionalAndDay(ctx context.Context, professionalID int64, day domain.Weekday) (*domain.WeeklySchedule, error)
}

// BlockerRepository интерфейс репозитория блокировок времени
type BlockerRepository interface {
	GetByProfessionalAndPeriod(ctx context.Context, professionalID int64, startDate, endDate time.Time) ([]*domain.TimeBlocker, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*catalogservice.Professional, error)
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
	GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*catalogservice.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

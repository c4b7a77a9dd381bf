package get_calendar

import (
	"context"
	"time"

	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/internal/integrations/catalogservice"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetActiveByProfessionalsAndPeriod(ctx context.Context, professionalIDs []int64, startDate, endDate time.Time) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория недельных расписаний
type ScheduleRepository interface {
	GetByProfessionalIDs(ctx context.Context, professionalIDs []int64) ([]*domain.WeeklySchedule, error)
}

// BlockerRepository интерфейс репозитория блокировок времени
type BlockerRepository interface {
	GetByProfessionalsAndPeriod(ctx context.Context, professionalIDs []int64, startDate, endDate time.Time) ([]*domain.TimeBlocker, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*catalogservice.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

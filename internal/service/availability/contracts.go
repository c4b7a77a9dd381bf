package availability

import (
	"context"
	"time"

	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/internal/integrations/catalogservice"
)

// ScheduleRepository интерфейс репозитория недельных расписаний
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.WeeklySchedule, error)
	GetByProfessionalID(ctx context.Context, professionalID int64) ([]*domain.WeeklySchedule, error)
	CreateWeek(ctx context.Context, week []*domain.WeeklySchedule) error
	UpdateDay(ctx context.Context, id int64, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error)
}

// BlockerRepository интерфейс репозитория блокировок времени
type BlockerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeBlocker, error)
	GetByProfessionalAndPeriod(ctx context.Context, professionalID int64, startDate, endDate time.Time) ([]*domain.TimeBlocker, error)
	DeleteByIDs(ctx context.Context, professionalID int64, ids []int64) (int64, error)
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

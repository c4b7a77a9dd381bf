package create_blocker

import (
	"context"

	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/internal/integrations/catalogservice"
)

// BlockerRepository интерфейс репозитория блокировок времени
type BlockerRepository interface {
	CreateBatch(ctx context.Context, blockers []*domain.TimeBlocker) ([]*domain.TimeBlocker, error)
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

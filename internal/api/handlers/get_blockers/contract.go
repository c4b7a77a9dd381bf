package get_blockers

import (
	"context"

	"github.com/salonique/booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	GetBlockers(ctx context.Context, req *models.GetBlockersRequest) (*models.BlockerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

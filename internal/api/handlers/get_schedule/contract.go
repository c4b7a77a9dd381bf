package get_schedule

import (
	"context"

	"github.com/salonique/booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	GetSchedule(ctx context.Context, professionalID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

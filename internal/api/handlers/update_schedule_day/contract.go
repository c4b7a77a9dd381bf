package update_schedule_day

import (
	"context"

	"github.com/salonique/booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	UpdateScheduleDay(ctx context.Context, scheduleID int64, req *models.UpdateScheduleDayRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

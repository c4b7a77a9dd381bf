package delete_blocker

import (
	"context"
)

type AvailabilityService interface {
	DeleteBlockerGroup(ctx context.Context, blockerID int64, userID int64) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_blocker

import (
	"context"

	createBlocker "github.com/salonique/booking-service/internal/usecase/create_blocker"
)

type CreateBlockerUseCase interface {
	Execute(ctx context.Context, req *createBlocker.Request) (*createBlocker.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

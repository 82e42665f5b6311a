package create_walkin

import (
	"context"

	createWalkIn "github.com/yash635644/barber-backend/internal/usecase/create_walkin"
)

type CreateWalkInUseCase interface {
	Execute(ctx context.Context, req *createWalkIn.Request) (*createWalkIn.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

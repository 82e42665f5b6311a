package get_stats

import (
	"context"

	"github.com/yash635644/barber-backend/internal/domain"
)

type GetStatsUseCase interface {
	Execute(ctx context.Context) (*domain.Stats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

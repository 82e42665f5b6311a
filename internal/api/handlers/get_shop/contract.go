package get_shop

import (
	"context"

	"github.com/yash635644/barber-backend/internal/domain"
)

type ShopService interface {
	Get(ctx context.Context) (*domain.Shop, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

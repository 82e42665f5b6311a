package shop

import (
	"context"

	"github.com/yash635644/barber-backend/internal/domain"
)

// ShopRepository интерфейс репозитория магазина
type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package holidays

import (
	"context"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
)

// HolidayRepository интерфейс репозитория выходных
type HolidayRepository interface {
	List(ctx context.Context) ([]*domain.Holiday, error)
	ListFrom(ctx context.Context, from time.Time) ([]*domain.Holiday, error)
	Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error)
	Delete(ctx context.Context, id int64) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

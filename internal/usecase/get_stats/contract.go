package get_stats

import (
	"context"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListCompletedWithPrice(ctx context.Context) ([]domain.CompletedBooking, error)
	Count(ctx context.Context, filter domain.BookingsFilter) (int, error)
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

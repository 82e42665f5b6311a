package create_walkin

import (
	"context"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория прайс-листа
type ServiceRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Service, error)
}

// MetricsRecorder учет созданных бронирований
type MetricsRecorder interface {
	BookingCreated(bookingType string)
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

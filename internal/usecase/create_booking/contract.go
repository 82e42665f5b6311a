package create_booking

import (
	"context"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// HolidayRepository интерфейс репозитория выходных
type HolidayRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Holiday, error)
}

// ServiceRepository интерфейс репозитория прайс-листа
type ServiceRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Service, error)
}

// Notifier отправка уведомлений; ошибки доставки не возвращаются вызывающему
type Notifier interface {
	Notify(ctx context.Context, to, body string)
}

// MetricsRecorder учет созданных бронирований
type MetricsRecorder interface {
	BookingCreated(bookingType string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

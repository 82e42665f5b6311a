package get_available_slots

import (
	"context"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// HolidayRepository интерфейс репозитория выходных
type HolidayRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Holiday, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

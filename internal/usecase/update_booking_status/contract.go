package update_booking_status

import (
	"context"

	"github.com/yash635644/barber-backend/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// ServiceRepository интерфейс репозитория прайс-листа (цена для старых записей без снимка)
type ServiceRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Service, error)
}

// ShopProvider источник информации о магазине для текста подтверждения
type ShopProvider interface {
	Get(ctx context.Context) (*domain.Shop, error)
}

// Notifier отправка уведомлений; ошибки доставки не возвращаются вызывающему
type Notifier interface {
	Notify(ctx context.Context, to, body string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

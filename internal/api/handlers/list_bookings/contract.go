package list_bookings

import (
	"context"

	"github.com/yash635644/barber-backend/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

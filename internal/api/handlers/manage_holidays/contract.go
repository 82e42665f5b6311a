package manage_holidays

import (
	"context"

	"github.com/yash635644/barber-backend/internal/service/holidays/models"
)

type HolidayService interface {
	List(ctx context.Context) ([]models.HolidayResponse, error)
	Upcoming(ctx context.Context) ([]models.HolidayResponse, error)
	Create(ctx context.Context, req *models.HolidayRequest) (*models.HolidayResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

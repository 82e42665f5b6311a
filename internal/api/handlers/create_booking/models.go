package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
	createBooking "github.com/yash635644/barber-backend/internal/usecase/create_booking"
	"github.com/yash635644/barber-backend/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"` // "2024-06-01"
	Time    string `json:"time"` // "10:00"
}

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые дата и время остаются нулевыми, их отсутствие проверяет use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	var (
		date  time.Time
		start types.TimeString
		err   error
	)

	if s := strings.TrimSpace(r.Date); s != "" {
		date, err = time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
		}
	}

	if s := strings.TrimSpace(r.Time); s != "" {
		start, err = types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
		}
	}

	return &createBooking.Request{
		CustomerName:  r.Name,
		CustomerPhone: r.Phone,
		ServiceName:   r.Service,
		Date:          date,
		StartTime:     start,
	}, nil
}

func fmtShopClosed(date string) string {
	return fmt.Sprintf(msgShopClosedFormat, date)
}

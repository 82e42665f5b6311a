package update_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
	updateBooking "github.com/yash635644/barber-backend/internal/usecase/update_booking"
	"github.com/yash635644/barber-backend/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	Date    string `json:"date"` // "2024-06-01"
	Time    string `json:"time"` // "10:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	var (
		date  time.Time
		start types.TimeString
		err   error
	)

	if s := strings.TrimSpace(r.Date); s != "" {
		if date, err = time.Parse(domain.DateFormat, s); err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
		}
	}

	if s := strings.TrimSpace(r.Time); s != "" {
		if start, err = types.NewTimeStringFromString(s); err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
		}
	}

	return &updateBooking.Request{
		BookingID:    bookingID,
		CustomerName: r.Name,
		ServiceName:  r.Service,
		Date:         date,
		StartTime:    start,
	}, nil
}

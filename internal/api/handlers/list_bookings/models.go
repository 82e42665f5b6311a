package list_bookings

import (
	"strings"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
	"github.com/yash635644/barber-backend/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(dateStr, statusStr string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if statusStr = strings.TrimSpace(statusStr); statusStr != "" {
		req.Status = &statusStr
	}

	if dateStr = strings.TrimSpace(dateStr); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}

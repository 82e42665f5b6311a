package create_booking

import (
	"fmt"
	"strings"

	"github.com/yash635644/barber-backend/internal/domain"
)

// normalizeRequest обрезает пробелы в строковых полях
func normalizeRequest(req *Request) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.ServiceName = strings.TrimSpace(req.ServiceName)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if len(req.CustomerPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.ServiceName == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// findClosed возвращает первый выходной со статусом Closed
func findClosed(holidays []*domain.Holiday) *domain.Holiday {
	for _, h := range holidays {
		if h.IsClosed() {
			return h
		}
	}
	return nil
}

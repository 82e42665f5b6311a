package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
)

// ParseDate разбирает дату из query-параметра в формате YYYY-MM-DD
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrDateRequired
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	return date, nil
}

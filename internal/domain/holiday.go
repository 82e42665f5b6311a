package domain

import "time"

// HolidayStatus how the shop operates on a holiday
type HolidayStatus string

const (
	HolidayClosed  HolidayStatus = "Closed"
	HolidayLimited HolidayStatus = "Limited"
)

// Holiday per-date override of normal operation
type Holiday struct {
	ID     int64
	Date   time.Time
	Status HolidayStatus
	Note   string
}

// IsClosed returns true if the shop takes no bookings on this date
func (h *Holiday) IsClosed() bool {
	return h.Status == HolidayClosed
}

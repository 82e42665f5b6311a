package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yash635644/barber-backend/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusDeclined  BookingStatus = "Declined"
	StatusCompleted BookingStatus = "Completed"
	StatusNoShow    BookingStatus = "No-Show"
)

// BookingType origin of a booking
type BookingType string

const (
	TypeOnline BookingType = "Online"
	TypeWalkIn BookingType = "Walk-in"
)

// Booking represents an appointment at the shop
type Booking struct {
	ID              int64
	ShopID          int64
	CustomerName    string
	CustomerPhone   string
	ServiceName     string // по значению, не внешний ключ
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	ServicePrice    *decimal.Decimal // снимок цены на момент записи, nil если услуга не найдена
	Status          BookingStatus
	Type            BookingType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOnline returns true if the booking was requested by a customer
func (b *Booking) IsOnline() bool {
	return b.Type == TypeOnline
}

// OccupiesSlot returns true if the booking blocks its time slot.
// Every status except Declined counts, pending requests included.
func (b *Booking) OccupiesSlot() bool {
	return b.Status != StatusDeclined
}

// DateTime renders the legacy composite "YYYY-MM-DD at HH:MM" string used by clients
func (b *Booking) DateTime() string {
	return FormatDateTime(b.BookingDate, b.StartTime)
}

// FormatDateTime собирает строку вида "2024-06-01 at 10:00"
func FormatDateTime(date time.Time, start types.TimeString) string {
	return date.Format(DateFormat) + " at " + start.String()
}

// ParseBookingStatus validates a status coming from the outside world
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}

// CanTransitionTo reports whether the strict workflow allows moving to next.
// Re-applying the current status is always allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range StrictTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BookingsFilter фильтр выборки бронирований
type BookingsFilter struct {
	Date            *time.Time      // Конкретная дата (опционально)
	Statuses        []BookingStatus // Допустимые статусы (пусто - любые)
	ExcludeStatuses []BookingStatus // Исключаемые статусы
}

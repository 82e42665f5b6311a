package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRevenue revenue of completed bookings in one calendar month
type MonthlyRevenue struct {
	Month   string // YYYY-MM
	Revenue decimal.Decimal
}

// Stats admin dashboard snapshot
type Stats struct {
	CurrentMonthRevenue decimal.Decimal
	History             []MonthlyRevenue // по убыванию месяца
	TodayBookings       int
	PendingBookings     int
}

// CompletedBooking completed booking with its resolved price
type CompletedBooking struct {
	BookingID   int64
	BookingDate time.Time
	Price       decimal.Decimal
}

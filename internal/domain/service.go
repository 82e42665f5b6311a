package domain

import "github.com/shopspring/decimal"

// Service an offering from the price list. Bookings reference it by Name
type Service struct {
	ID              int64
	Name            string
	Price           decimal.Decimal
	Category        string
	DurationMinutes int
}

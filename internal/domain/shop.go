package domain

import "github.com/yash635644/barber-backend/pkg/types"

// Shop the single location served by this backend
type Shop struct {
	ID          int64
	Name        string
	Address     string
	Phone       string
	OpeningTime types.TimeString
	ClosingTime types.TimeString
}

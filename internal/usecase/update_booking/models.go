package update_booking

import (
	"time"

	"github.com/yash635644/barber-backend/pkg/types"
)

// Request перенос или правка записи администратором
type Request struct {
	BookingID    int64
	CustomerName string
	ServiceName  string
	Date         time.Time
	StartTime    types.TimeString
}

// Response итог правки
type Response struct {
	ID       int64
	DateTime string
	Notified bool
}

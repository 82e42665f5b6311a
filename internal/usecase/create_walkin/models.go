package create_walkin

import (
	"time"

	"github.com/yash635644/barber-backend/pkg/types"
)

// Request запись клиента, пришедшего без записи. Дата всегда сегодняшняя
type Request struct {
	CustomerName string
	ServiceName  string
	StartTime    types.TimeString
}

// Response созданная запись
type Response struct {
	ID          int64
	BookingDate time.Time
	DateTime    string
}

package get_available_slots

import (
	"time"

	"github.com/yash635644/barber-backend/pkg/types"
)

// StatusOpen обычный рабочий день без переопределений
const StatusOpen = "Open"

// Request запрос занятости на дату
type Request struct {
	Date time.Time
}

// Response занятые слоты на дату
// При переопределении выходным Status и Note берутся из записи выходного, а Slots пуст
type Response struct {
	Status string
	Note   string
	Slots  []types.TimeString
}

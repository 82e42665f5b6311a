package get_available_slots

import (
	getAvailableSlots "github.com/yash635644/barber-backend/internal/usecase/get_available_slots"
)

// SlotsResponse занятые слоты на дату
// data всегда массив, при выходном пустой
type SlotsResponse struct {
	Status string   `json:"status"`
	Note   string   `json:"note,omitempty"`
	Data   []string `json:"data"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	data := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		data = append(data, slot.String())
	}

	return &SlotsResponse{
		Status: resp.Status,
		Note:   resp.Note,
		Data:   data,
	}
}

package models

import (
	"github.com/yash635644/barber-backend/internal/domain"
)

// HolidayRequest создание записи о выходном
type HolidayRequest struct {
	Date   string `json:"date"` // "2024-12-25"
	Status string `json:"status"`
	Note   string `json:"note"`
}

// HolidayResponse запись о выходном в ответе API
type HolidayResponse struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

// FromDomainHoliday конвертирует domain модель в DTO
func FromDomainHoliday(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:     h.ID,
		Date:   h.Date.Format(domain.DateFormat),
		Status: string(h.Status),
		Note:   h.Note,
	}
}

// FromDomainHolidayList конвертирует список; nil превращается в пустой срез
func FromDomainHolidayList(holidays []*domain.Holiday) []HolidayResponse {
	resp := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		resp = append(resp, FromDomainHoliday(h))
	}
	return resp
}

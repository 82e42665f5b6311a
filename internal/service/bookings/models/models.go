package models

import (
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
)

// ListBookingsRequest фильтры админского списка
type ListBookingsRequest struct {
	Date   *time.Time // Только бронирования на дату (опционально)
	Status *string    // Только указанный статус (опционально)
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64    `json:"id"`
	ShopID          int64    `json:"shopId"`
	CustomerName    string   `json:"customerName"`
	CustomerPhone   string   `json:"customerPhone"`
	ServiceName     string   `json:"serviceName"`
	DateTime        string   `json:"dateTime"`    // "2024-06-01 at 10:00"
	BookingDate     string   `json:"bookingDate"` // "2024-06-01"
	StartTime       string   `json:"startTime"`   // "10:00"
	DurationMinutes int      `json:"durationMinutes"`
	ServicePrice    *float64 `json:"servicePrice"`
	Status          string   `json:"status"`
	Type            string   `json:"type"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		ShopID:          b.ShopID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		ServiceName:     b.ServiceName,
		DateTime:        b.DateTime(),
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		Type:            string(b.Type),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.ServicePrice != nil {
		price := b.ServicePrice.InexactFloat64()
		resp.ServicePrice = &price
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp = append(resp, *bookingResp)
		}
	}
	return resp
}

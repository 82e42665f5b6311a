package models

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yash635644/barber-backend/internal/domain"
)

// ServiceRequest создание или изменение услуги
type ServiceRequest struct {
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	DurationMinutes int             `json:"duration"`
}

// ToDomain конвертирует запрос в domain модель; пустая длительность заменяется на 30 минут
func (r *ServiceRequest) ToDomain(id int64) *domain.Service {
	duration := r.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultServiceDurationMinutes
	}
	return &domain.Service{
		ID:              id,
		Name:            strings.TrimSpace(r.Name),
		Price:           r.Price,
		Category:        strings.TrimSpace(r.Category),
		DurationMinutes: duration,
	}
}

// ServiceResponse услуга в ответе API
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"duration"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price.InexactFloat64(),
		Category:        s.Category,
		DurationMinutes: s.DurationMinutes,
	}
}

// FromDomainServiceList конвертирует список; nil превращается в пустой срез
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, FromDomainService(s))
	}
	return resp
}

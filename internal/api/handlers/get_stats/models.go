package get_stats

import "github.com/yash635644/barber-backend/internal/domain"

// MonthlyRevenueResponse выручка за месяц
type MonthlyRevenueResponse struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// StatsResponse HTTP response model
type StatsResponse struct {
	CurrentMonthRevenue float64                  `json:"currentMonthRevenue"`
	History             []MonthlyRevenueResponse `json:"history"`
	TodayBookings       int                      `json:"todayBookings"`
	PendingBookings     int                      `json:"pendingBookings"`
}

// FromDomainStats конвертирует domain модель в HTTP response
func FromDomainStats(s *domain.Stats) *StatsResponse {
	history := make([]MonthlyRevenueResponse, 0, len(s.History))
	for _, m := range s.History {
		history = append(history, MonthlyRevenueResponse{
			Month:   m.Month,
			Revenue: m.Revenue.InexactFloat64(),
		})
	}

	return &StatsResponse{
		CurrentMonthRevenue: s.CurrentMonthRevenue.InexactFloat64(),
		History:             history,
		TodayBookings:       s.TodayBookings,
		PendingBookings:     s.PendingBookings,
	}
}

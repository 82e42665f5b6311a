package get_stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yash635644/barber-backend/internal/domain"
)

// monthlyTotals складывает выручку по месяцам YYYY-MM
func monthlyTotals(items []domain.CompletedBooking) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, item := range items {
		month := item.BookingDate.Format(domain.MonthFormat)
		totals[month] = totals[month].Add(item.Price)
	}
	return totals
}

// history месяцы с выручкой, от новых к старым, без пустых месяцев
func history(totals map[string]decimal.Decimal) []domain.MonthlyRevenue {
	result := make([]domain.MonthlyRevenue, 0, len(totals))
	for month, revenue := range totals {
		result = append(result, domain.MonthlyRevenue{Month: month, Revenue: revenue})
	}

	// YYYY-MM сортируется лексикографически так же, как по времени
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month > result[j].Month
	})

	return result
}

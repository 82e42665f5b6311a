package get_stats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/yash635644/barber-backend/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	stats *domain.Stats
	err   error
}

func (f fakeUseCase) Execute(context.Context) (*domain.Stats, error) {
	return f.stats, f.err
}

func TestHandle(t *testing.T) {
	h := NewHandler(fakeUseCase{stats: &domain.Stats{
		CurrentMonthRevenue: decimal.NewFromInt(1200),
		History: []domain.MonthlyRevenue{
			{Month: "2024-06", Revenue: decimal.NewFromInt(1200)},
			{Month: "2024-05", Revenue: decimal.RequireFromString("349.5")},
		},
		TodayBookings:   4,
		PendingBookings: 1,
	}}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{
		"currentMonthRevenue":1200,
		"history":[{"month":"2024-06","revenue":1200},{"month":"2024-05","revenue":349.5}],
		"todayBookings":4,
		"pendingBookings":1
	}}`, rec.Body.String())
}

func TestHandle_EmptyHistoryIsArray(t *testing.T) {
	h := NewHandler(fakeUseCase{stats: &domain.Stats{}}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	assert.Contains(t, rec.Body.String(), `"history":[]`)
}

func TestHandle_Error(t *testing.T) {
	h := NewHandler(fakeUseCase{err: errors.New("db down")}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

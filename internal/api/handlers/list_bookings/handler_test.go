package list_bookings

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash635644/barber-backend/internal/service/bookings"
	"github.com/yash635644/barber-backend/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got  *models.ListBookingsRequest
	resp []models.BookingResponse
	err  error
}

func (f *fakeService) List(_ context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	f.got = req
	return f.resp, f.err
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &fakeService{resp: []models.BookingResponse{{ID: 1, Status: "Pending"}}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/admin/bookings?date=2024-06-01&status=Pending", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[`)
	require.NotNil(t, svc.got.Date)
	assert.Equal(t, "2024-06-01", svc.got.Date.Format("2006-01-02"))
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "Pending", *svc.got.Status)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{resp: []models.BookingResponse{}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
	assert.Nil(t, svc.got.Date)
	assert.Nil(t, svc.got.Status)
}

func TestHandle_Errors(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/admin/bookings?date=tomorrow", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&fakeService{err: fmt.Errorf("%w: invalid status", bookings.ErrInvalidInput)}, nopLogger{})
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/admin/bookings?status=Lost", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&fakeService{err: errors.New("db down")}, nopLogger{})
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

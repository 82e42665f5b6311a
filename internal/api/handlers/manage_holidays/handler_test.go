package manage_holidays

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash635644/barber-backend/internal/service/holidays"
	"github.com/yash635644/barber-backend/internal/service/holidays/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeHolidays struct {
	all      []models.HolidayResponse
	upcoming []models.HolidayResponse
	created  *models.HolidayRequest
	err      error
}

func (f *fakeHolidays) List(context.Context) ([]models.HolidayResponse, error) {
	return f.all, f.err
}

func (f *fakeHolidays) Upcoming(context.Context) ([]models.HolidayResponse, error) {
	return f.upcoming, f.err
}

func (f *fakeHolidays) Create(_ context.Context, req *models.HolidayRequest) (*models.HolidayResponse, error) {
	f.created = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.HolidayResponse{ID: 2, Date: req.Date, Status: req.Status, Note: req.Note}, nil
}

func (f *fakeHolidays) Delete(context.Context, int64) error {
	return f.err
}

func router(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/holidays", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/holidays/upcoming", h.Upcoming).Methods(http.MethodGet)
	r.HandleFunc("/api/holidays", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/holidays/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestListAndUpcoming(t *testing.T) {
	svc := &fakeHolidays{
		all:      []models.HolidayResponse{{ID: 1, Date: "2024-01-26", Status: "Closed"}, {ID: 2, Date: "2024-12-25", Status: "Closed", Note: "Christmas"}},
		upcoming: []models.HolidayResponse{{ID: 2, Date: "2024-12-25", Status: "Closed", Note: "Christmas"}},
	}
	r := router(NewHandler(svc, nopLogger{}))

	rec := do(r, http.MethodGet, "/api/holidays", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"2024-01-26"`)

	rec = do(r, http.MethodGet, "/api/holidays/upcoming", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{"id":2,"date":"2024-12-25","status":"Closed","note":"Christmas"}]}`, rec.Body.String())
}

func TestCreate(t *testing.T) {
	svc := &fakeHolidays{}
	rec := do(router(NewHandler(svc, nopLogger{})), http.MethodPost, "/api/holidays",
		`{"date":"2024-12-25","status":"Closed","note":"Christmas"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"msg":"Holiday added","id":2}`, rec.Body.String())
	require.NotNil(t, svc.created)
	assert.Equal(t, "Closed", svc.created.Status)
}

func TestDelete(t *testing.T) {
	rec := do(router(NewHandler(&fakeHolidays{}, nopLogger{})), http.MethodDelete, "/api/holidays/2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"Holiday deleted"}`, rec.Body.String())
}

func TestErrorMapping(t *testing.T) {
	rec := do(router(NewHandler(&fakeHolidays{err: fmt.Errorf("%w: invalid date", holidays.ErrInvalidInput)}, nopLogger{})),
		http.MethodPost, "/api/holidays", `{"date":"25.12.2024","status":"Closed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid date"}`, rec.Body.String())

	rec = do(router(NewHandler(&fakeHolidays{err: holidays.ErrHolidayNotFound}, nopLogger{})), http.MethodDelete, "/api/holidays/5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(router(NewHandler(&fakeHolidays{}, nopLogger{})), http.MethodDelete, "/api/holidays/-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router(NewHandler(&fakeHolidays{err: errors.New("db down")}, nopLogger{})), http.MethodGet, "/api/holidays/upcoming", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/yash635644/barber-backend/internal/usecase/get_available_slots"
	"github.com/yash635644/barber-backend/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Open(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Status: getAvailableSlots.StatusOpen,
		Slots:  []types.TimeString{types.MustTimeString("10:00")},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := get(h, "/api/slots?date=2024-06-01")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"Open","data":["10:00"]}`, rec.Body.String())
	require.NotNil(t, uc.got)
	assert.Equal(t, "2024-06-01", uc.got.Date.Format("2006-01-02"))
}

func TestHandle_Holiday(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Status: "Closed",
		Note:   "Christmas",
		Slots:  []types.TimeString{},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := get(h, "/api/slots?date=2024-12-25")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"Closed","note":"Christmas","data":[]}`, rec.Body.String())
}

func TestHandle_DateErrors(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := get(h, "/api/slots")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Date is required"}`, rec.Body.String())

	rec = get(h, "/api/slots?date=June")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid date format, expected YYYY-MM-DD"}`, rec.Body.String())
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: errors.New("db down")}, nopLogger{})

	rec := get(h, "/api/slots?date=2024-06-01")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

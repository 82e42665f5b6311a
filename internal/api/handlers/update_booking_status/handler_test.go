package update_booking_status

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

	updateStatus "github.com/yash635644/barber-backend/internal/usecase/update_booking_status"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *updateStatus.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateStatus.Request) (*updateStatus.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &updateStatus.Response{ID: req.BookingID, Status: req.Status, Notified: true}, nil
}

func put(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/admin/bookings/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	uc := &fakeUseCase{}
	rec := put(NewHandler(uc, nopLogger{}), "5", `{"status":"Completed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Status Updated"}`, rec.Body.String())
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(5), uc.got.BookingID)
	assert.Equal(t, "Completed", uc.got.Status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		id   string
		body string
		err  error
		want int
	}{
		{name: "bad id", id: "abc", body: `{"status":"Completed"}`, want: http.StatusBadRequest},
		{name: "bad body", id: "5", body: `nope`, want: http.StatusBadRequest},
		{name: "bad status", id: "5", body: `{"status":"Lost"}`, err: fmt.Errorf("%w: %q", updateStatus.ErrInvalidStatus, "Lost"), want: http.StatusBadRequest},
		{name: "strict transition", id: "5", body: `{"status":"Pending"}`, err: updateStatus.ErrInvalidTransition, want: http.StatusBadRequest},
		{name: "not found", id: "77", body: `{"status":"Completed"}`, err: updateStatus.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "internal", id: "5", body: `{"status":"Completed"}`, err: fmt.Errorf("%w: %v", updateStatus.ErrInternal, errors.New("db")), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := put(NewHandler(&fakeUseCase{err: tc.err}, nopLogger{}), tc.id, tc.body)
			assert.Equal(t, tc.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

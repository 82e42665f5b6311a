package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash635644/barber-backend/internal/domain"
	"github.com/yash635644/barber-backend/pkg/types"
)

type testEnv struct {
	bookings *fakeBookingRepo
	holidays *fakeHolidayRepo
	notifier *spyNotifier
	metrics  *countingMetrics
	tx       *inlineTx
	uc       *UseCase
}

func newTestEnv(cfg Config) *testEnv {
	env := &testEnv{
		bookings: &fakeBookingRepo{},
		holidays: &fakeHolidayRepo{byDate: map[string][]*domain.Holiday{}},
		notifier: &spyNotifier{},
		metrics:  &countingMetrics{},
		tx:       &inlineTx{},
	}
	services := &fakeServiceRepo{services: map[string]*domain.Service{
		"Haircut": {ID: 1, Name: "Haircut", Price: decimal.NewFromInt(500), DurationMinutes: 45},
	}}
	env.uc = NewUseCase(env.bookings, env.holidays, services, env.notifier, env.metrics, env.tx, cfg, nopLogger{})
	return env
}

func date(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "A",
		CustomerPhone: "9999999999",
		ServiceName:   "Haircut",
		Date:          date("2024-06-01"),
		StartTime:     types.MustTimeString("10:00"),
	}
}

func TestExecute_CreatesPendingOnlineBookingAndNotifiesOwner(t *testing.T) {
	env := newTestEnv(Config{ShopID: 1, OwnerPhone: "8887776666", AdminURL: "https://shop.example/admin"})

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2024-06-01 at 10:00", resp.DateTime)
	assert.Equal(t, 1, env.tx.calls)

	require.Len(t, env.bookings.created, 1)
	created := env.bookings.created[0]
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, domain.TypeOnline, created.Type)
	assert.Equal(t, int64(1), created.ShopID)
	assert.Equal(t, 45, created.DurationMinutes)
	require.NotNil(t, created.ServicePrice)
	assert.True(t, created.ServicePrice.Equal(decimal.NewFromInt(500)))

	require.Len(t, env.notifier.calls, 1)
	assert.Equal(t, "8887776666", env.notifier.calls[0].to)
	assert.Contains(t, env.notifier.calls[0].body, "9999999999")
	assert.Contains(t, env.notifier.calls[0].body, "https://shop.example/admin")

	assert.Equal(t, 1, env.metrics.created["Online"])
}

func TestExecute_ClosedHolidayRejectsWithoutInsert(t *testing.T) {
	env := newTestEnv(Config{OwnerPhone: "1"})
	env.holidays.byDate["2024-12-25"] = []*domain.Holiday{{ID: 1, Status: domain.HolidayClosed}}

	req := validRequest()
	req.Date = date("2024-12-25")

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrShopClosed)
	assert.Empty(t, env.bookings.created)
	assert.Empty(t, env.notifier.calls)
}

func TestExecute_ClosedAmongSeveralHolidayRows(t *testing.T) {
	env := newTestEnv(Config{})
	env.holidays.byDate["2024-12-25"] = []*domain.Holiday{
		{ID: 1, Status: domain.HolidayLimited},
		{ID: 2, Status: domain.HolidayClosed},
	}

	req := validRequest()
	req.Date = date("2024-12-25")

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrShopClosed)
}

func TestExecute_LimitedHolidayAllowsBooking(t *testing.T) {
	env := newTestEnv(Config{})
	env.holidays.byDate["2024-06-01"] = []*domain.Holiday{{ID: 1, Status: domain.HolidayLimited, Note: "Half day"}}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.Len(t, env.bookings.created, 1)
}

func TestExecute_UnknownService(t *testing.T) {
	env := newTestEnv(Config{OwnerPhone: "1"})
	req := validRequest()
	req.ServiceName = "Massage"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, env.bookings.created)
	assert.Empty(t, env.notifier.calls)
}

func TestExecute_Validation(t *testing.T) {
	cases := map[string]func(r *Request){
		"empty name":    func(r *Request) { r.CustomerName = "  " },
		"empty phone":   func(r *Request) { r.CustomerPhone = "" },
		"empty service": func(r *Request) { r.ServiceName = "" },
		"zero date":     func(r *Request) { r.Date = time.Time{} },
		"zero time":     func(r *Request) { r.StartTime = types.TimeString{} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(Config{})
			req := validRequest()
			mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, env.bookings.created)
		})
	}
}

func TestExecute_NoOwnerPhoneSkipsNotification(t *testing.T) {
	env := newTestEnv(Config{})

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, env.notifier.calls)
}

func TestExecute_StorageErrors(t *testing.T) {
	env := newTestEnv(Config{OwnerPhone: "1"})
	env.bookings.err = errors.New("insert failed")

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, env.notifier.calls)

	env = newTestEnv(Config{OwnerPhone: "1"})
	env.holidays.err = errors.New("select failed")

	_, err = env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

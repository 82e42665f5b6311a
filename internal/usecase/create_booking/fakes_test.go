package create_booking

import (
	"context"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
	serviceRepo "github.com/yash635644/barber-backend/internal/infra/storage/service"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	created []*domain.Booking
	err     error
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b.ID = int64(len(r.created) + 1)
	r.created = append(r.created, b)
	return b, nil
}

type fakeHolidayRepo struct {
	byDate map[string][]*domain.Holiday
	err    error
}

func (r *fakeHolidayRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Holiday, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byDate[date.Format(domain.DateFormat)], nil
}

type fakeServiceRepo struct {
	services map[string]*domain.Service
}

func (r *fakeServiceRepo) GetByName(_ context.Context, name string) (*domain.Service, error) {
	if s, ok := r.services[name]; ok {
		return s, nil
	}
	return nil, serviceRepo.ErrServiceNotFound
}

type notification struct {
	to   string
	body string
}

type spyNotifier struct {
	calls []notification
}

func (n *spyNotifier) Notify(_ context.Context, to, body string) {
	n.calls = append(n.calls, notification{to: to, body: body})
}

type countingMetrics struct {
	created map[string]int
}

func (m *countingMetrics) BookingCreated(bookingType string) {
	if m.created == nil {
		m.created = make(map[string]int)
	}
	m.created[bookingType]++
}

type inlineTx struct {
	calls int
}

func (tx *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

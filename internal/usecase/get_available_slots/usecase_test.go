package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash635644/barber-backend/internal/domain"
	"github.com/yash635644/barber-backend/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// memBookingRepo применяет фильтр так же, как SQL-репозиторий
type memBookingRepo struct {
	bookings []*domain.Booking
	err      error
	calls    int
}

func (r *memBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.Date != nil && !b.BookingDate.Equal(*filter.Date) {
			continue
		}
		excluded := false
		for _, s := range filter.ExcludeStatuses {
			if b.Status == s {
				excluded = true
			}
		}
		if excluded {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type memHolidayRepo struct {
	holidays []*domain.Holiday
	err      error
}

func (r *memHolidayRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Holiday, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*domain.Holiday, 0)
	for _, h := range r.holidays {
		if h.Date.Equal(date) {
			result = append(result, h)
		}
	}
	return result, nil
}

func day(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func booking(id int64, date, start string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		BookingDate: day(date),
		StartTime:   types.MustTimeString(start),
		Status:      status,
		Type:        domain.TypeOnline,
	}
}

func slotStrings(slots []types.TimeString) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.String()
	}
	return result
}

func TestExecute_DeclinedDoesNotOccupy(t *testing.T) {
	bookings := &memBookingRepo{bookings: []*domain.Booking{
		booking(1, "2024-06-01", "10:00", domain.StatusConfirmed),
		booking(2, "2024-06-01", "11:00", domain.StatusDeclined),
	}}
	uc := NewUseCase(bookings, &memHolidayRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: day("2024-06-01")})
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, resp.Status)
	assert.Equal(t, []string{"10:00"}, slotStrings(resp.Slots))
}

func TestExecute_EveryNonDeclinedStatusOccupiesSortedByTime(t *testing.T) {
	bookings := &memBookingRepo{bookings: []*domain.Booking{
		booking(1, "2024-06-01", "15:30", domain.StatusNoShow),
		booking(2, "2024-06-01", "09:00", domain.StatusPending),
		booking(3, "2024-06-01", "12:00", domain.StatusCompleted),
		booking(4, "2024-06-02", "10:00", domain.StatusConfirmed),
		booking(5, "2024-06-01", "12:00", domain.StatusConfirmed),
	}}
	uc := NewUseCase(bookings, &memHolidayRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: day("2024-06-01")})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "12:00", "12:00", "15:30"}, slotStrings(resp.Slots))
}

func TestExecute_HolidayOverridesBookings(t *testing.T) {
	bookings := &memBookingRepo{bookings: []*domain.Booking{
		booking(1, "2024-12-25", "10:00", domain.StatusConfirmed),
	}}
	holidays := &memHolidayRepo{holidays: []*domain.Holiday{
		{ID: 3, Date: day("2024-12-25"), Status: domain.HolidayLimited, Note: "Till 2pm"},
		{ID: 4, Date: day("2024-12-25"), Status: domain.HolidayClosed, Note: "Christmas"},
	}}
	uc := NewUseCase(bookings, holidays, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: day("2024-12-25")})
	require.NoError(t, err)
	assert.Equal(t, "Limited", resp.Status)
	assert.Equal(t, "Till 2pm", resp.Note)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, bookings.calls)
}

func TestExecute_EmptyDayIsOpenWithNoSlots(t *testing.T) {
	uc := NewUseCase(&memBookingRepo{}, &memHolidayRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: day("2024-06-03")})
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, resp.Status)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	uc := NewUseCase(&memBookingRepo{}, &memHolidayRepo{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrDateRequired)

	uc = NewUseCase(&memBookingRepo{}, &memHolidayRepo{err: errors.New("db down")}, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{Date: day("2024-06-01")})
	assert.ErrorIs(t, err, ErrInternal)

	uc = NewUseCase(&memBookingRepo{err: errors.New("db down")}, &memHolidayRepo{}, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{Date: day("2024-06-01")})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-06-01 ")
	require.NoError(t, err)
	assert.Equal(t, day("2024-06-01"), d)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = ParseDate("01/06/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

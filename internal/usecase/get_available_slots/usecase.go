package get_available_slots

import (
	"context"
	"fmt"

	"github.com/yash635644/barber-backend/internal/domain"
	"github.com/yash635644/barber-backend/pkg/types"
)

// UseCase возвращает занятые слоты на дату
// Свободные слоты считает клиент по часам работы салона
type UseCase struct {
	bookingRepo BookingRepository
	holidayRepo HolidayRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	holidayRepo HolidayRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

// Execute выполняет получение занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, ErrDateRequired
	}

	date := req.Date.Format(domain.DateFormat)

	holidays, err := uc.holidayRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get holidays for %s: %v", date, err)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	// Любая запись на дату отменяет расчет; при дублях берется первая по id
	if len(holidays) > 0 {
		h := holidays[0]
		uc.logger.Info("GetAvailableSlots: date %s overridden by holiday id=%d status=%s", date, h.ID, h.Status)
		return &Response{
			Status: string(h.Status),
			Note:   h.Note,
			Slots:  []types.TimeString{},
		}, nil
	}

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		Date:            &req.Date,
		ExcludeStatuses: []domain.BookingStatus{domain.StatusDeclined},
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings for %s: %v", date, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	slots := occupiedSlots(bookings)

	uc.logger.Info("GetAvailableSlots: date %s has %d occupied slots", date, len(slots))

	return &Response{
		Status: StatusOpen,
		Slots:  slots,
	}, nil
}

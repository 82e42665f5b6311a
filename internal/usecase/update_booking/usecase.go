package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yash635644/barber-backend/internal/domain"
	bookingRepo "github.com/yash635644/barber-backend/internal/infra/storage/booking"
	serviceRepo "github.com/yash635644/barber-backend/internal/infra/storage/service"
	"github.com/yash635644/barber-backend/internal/service/notifications"
	"github.com/yash635644/barber-backend/pkg/ptr"
)

// UseCase правка имени, услуги, даты и времени записи
// Статус не меняется; выходные повторно не проверяются
type UseCase struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	notifier    Notifier
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute перезаписывает запись и для онлайн-записей уведомляет клиента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.ServiceName = strings.TrimSpace(req.ServiceName)

	uc.logger.Info("UpdateBooking: booking_id=%d, name=%q, service=%q, date=%s, time=%s",
		req.BookingID, req.CustomerName, req.ServiceName, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// Смена услуги обновляет снимок цены и длительность
	if req.ServiceName != booking.ServiceName || booking.ServicePrice == nil {
		if err := uc.snapshotService(ctx, booking, req.ServiceName); err != nil {
			return nil, err
		}
	}

	booking.CustomerName = req.CustomerName
	booking.ServiceName = req.ServiceName
	booking.BookingDate = req.Date
	booking.StartTime = req.StartTime

	if err := uc.bookingRepo.UpdateDetails(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d disappeared during update", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateBooking: booking id=%d moved to %s", booking.ID, booking.DateTime())

	resp := &Response{ID: booking.ID, DateTime: booking.DateTime()}

	if booking.IsOnline() {
		uc.notifier.Notify(ctx, booking.CustomerPhone, notifications.BookingUpdated(booking))
		resp.Notified = true
	}

	return resp, nil
}

func (uc *UseCase) snapshotService(ctx context.Context, booking *domain.Booking, serviceName string) error {
	service, err := uc.serviceRepo.GetByName(ctx, serviceName)
	switch {
	case err == nil:
		booking.ServicePrice = ptr.Ptr(service.Price)
		if service.DurationMinutes > 0 {
			booking.DurationMinutes = service.DurationMinutes
		}
		return nil
	case errors.Is(err, serviceRepo.ErrServiceNotFound):
		uc.logger.Warn("UpdateBooking: service %q is not in the price list, price cleared", serviceName)
		booking.ServicePrice = nil
		return nil
	default:
		uc.logger.Error("UpdateBooking: failed to get service %q: %v", serviceName, err)
		return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
}

func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	if req.CustomerName == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if req.ServiceName == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}
	return nil
}

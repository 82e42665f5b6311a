package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/yash635644/barber-backend/internal/domain"
	bookingRepo "github.com/yash635644/barber-backend/internal/infra/storage/booking"
	"github.com/yash635644/barber-backend/internal/service/notifications"
	"github.com/yash635644/barber-backend/pkg/ptr"
)

// UseCase смена статуса бронирования с уведомлением клиента
type UseCase struct {
	bookingRepo       BookingRepository
	serviceRepo       ServiceRepository
	shop              ShopProvider
	notifier          Notifier
	strictTransitions bool
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
// strictTransitions включает таблицу допустимых переходов; по умолчанию разрешен любой переход
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	shop ShopProvider,
	notifier Notifier,
	strictTransitions bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:       bookingRepo,
		serviceRepo:       serviceRepo,
		shop:              shop,
		notifier:          notifier,
		strictTransitions: strictTransitions,
		logger:            logger,
	}
}

// Execute сохраняет новый статус, перечитывает запись и для онлайн-записей уведомляет клиента
// Результат отправки на ответ не влияет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking_id=%d, status=%q", req.BookingID, req.Status)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	status, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		uc.logger.Warn("UpdateBookingStatus: invalid status=%q for booking id=%d", req.Status, req.BookingID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if uc.strictTransitions {
		current, err := uc.getBooking(ctx, req.BookingID)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(status) {
			uc.logger.Warn("UpdateBookingStatus: transition %s -> %s rejected for booking id=%d",
				current.Status, status, req.BookingID)
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
		}
	}

	if err := uc.bookingRepo.UpdateStatus(ctx, req.BookingID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBookingStatus: failed to update booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	// Перечитываем запись уже с новым статусом
	booking, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBookingStatus: booking id=%d is now %s", booking.ID, booking.Status)

	resp := &Response{ID: booking.ID, Status: string(booking.Status)}

	if !booking.IsOnline() {
		return resp, nil
	}

	if booking.Status == domain.StatusConfirmed && booking.ServicePrice == nil {
		uc.resolvePrice(ctx, booking)
	}

	var shop *domain.Shop
	if booking.Status == domain.StatusConfirmed {
		shop = uc.getShop(ctx)
	}

	body, ok := notifications.ForStatus(booking, shop)
	if !ok {
		return resp, nil
	}

	uc.notifier.Notify(ctx, booking.CustomerPhone, body)
	resp.Notified = true

	return resp, nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBookingStatus: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// resolvePrice подставляет текущую цену из прайс-листа для записей без снимка цены
func (uc *UseCase) resolvePrice(ctx context.Context, booking *domain.Booking) {
	service, err := uc.serviceRepo.GetByName(ctx, booking.ServiceName)
	if err != nil {
		uc.logger.Warn("UpdateBookingStatus: price for service %q is unknown: %v", booking.ServiceName, err)
		return
	}
	booking.ServicePrice = ptr.Ptr(service.Price)
}

func (uc *UseCase) getShop(ctx context.Context) *domain.Shop {
	shop, err := uc.shop.Get(ctx)
	if err != nil {
		uc.logger.Warn("UpdateBookingStatus: shop info unavailable, location omitted: %v", err)
		return nil
	}
	return shop
}

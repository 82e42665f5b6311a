package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/yash635644/barber-backend/internal/domain"
	serviceRepo "github.com/yash635644/barber-backend/internal/infra/storage/service"
	"github.com/yash635644/barber-backend/internal/service/notifications"
	"github.com/yash635644/barber-backend/pkg/ptr"
)

// UseCase use case для создания онлайн-записи клиентом
type UseCase struct {
	bookingRepo BookingRepository
	holidayRepo HolidayRepository
	serviceRepo ServiceRepository
	notifier    Notifier
	metrics     MetricsRecorder
	txManager   TransactionManager
	cfg         Config
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	holidayRepo HolidayRepository,
	serviceRepo ServiceRepository,
	notifier Notifier,
	metrics MetricsRecorder,
	txManager TransactionManager,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		holidayRepo: holidayRepo,
		serviceRepo: serviceRepo,
		notifier:    notifier,
		metrics:     metrics,
		txManager:   txManager,
		cfg:         cfg,
		logger:      logger,
	}
}

// Execute выполняет use case создания онлайн-записи
// Проверка выходного и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("CreateBooking: name=%q, service=%q, date=%s, time=%s",
		req.CustomerName, req.ServiceName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга должна существовать; заодно снимаем цену и длительность
	service, err := uc.serviceRepo.GetByName(ctx, req.ServiceName)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service %q not found", req.ServiceName)
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, req.ServiceName)
		}
		uc.logger.Error("CreateBooking: failed to get service %q: %v", req.ServiceName, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 3. Проверка выходного и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		holidays, err := uc.holidayRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get holidays: %v", err)
			return fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
		}

		if closed := findClosed(holidays); closed != nil {
			uc.logger.Warn("CreateBooking: shop is closed on %s (holiday id=%d)",
				req.Date.Format(domain.DateFormat), closed.ID)
			return fmt.Errorf("%w: %s", ErrShopClosed, req.Date.Format(domain.DateFormat))
		}

		booking := &domain.Booking{
			ShopID:          uc.cfg.ShopID,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			ServiceName:     service.Name,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: durationOf(service),
			ServicePrice:    ptr.Ptr(service.Price),
			Status:          domain.StatusPending,
			Type:            domain.TypeOnline,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	uc.metrics.BookingCreated(string(domain.TypeOnline))

	// 4. Уведомляем владельца уже после коммита
	if uc.cfg.OwnerPhone != "" {
		uc.notifier.Notify(ctx, uc.cfg.OwnerPhone, notifications.OwnerNewBooking(result, uc.cfg.AdminURL))
	} else {
		uc.logger.Warn("CreateBooking: owner phone is not configured, skipping notification for booking id=%d", result.ID)
	}

	return &Response{
		ID:       result.ID,
		DateTime: result.DateTime(),
		Status:   string(result.Status),
	}, nil
}

func durationOf(service *domain.Service) int {
	if service.DurationMinutes > 0 {
		return service.DurationMinutes
	}
	return domain.DefaultServiceDurationMinutes
}

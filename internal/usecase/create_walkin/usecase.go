package create_walkin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
	serviceRepo "github.com/yash635644/barber-backend/internal/infra/storage/service"
	"github.com/yash635644/barber-backend/pkg/ptr"
)

// UseCase запись клиента с улицы администратором
// Без проверки выходных и без уведомлений: у клиента часто нет номера
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	metrics      MetricsRecorder
	shopID       int64
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; location определяет "сегодня"
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	metrics MetricsRecorder,
	shopID int64,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		metrics:      metrics,
		shopID:       shopID,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute создает подтвержденную запись на сегодня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	name := strings.TrimSpace(req.CustomerName)
	serviceName := strings.TrimSpace(req.ServiceName)

	uc.logger.Info("CreateWalkIn: name=%q, service=%q, time=%s", name, serviceName, req.StartTime)

	if err := validate(name, serviceName, req); err != nil {
		uc.logger.Warn("CreateWalkIn: validation failed: %v", err)
		return nil, err
	}

	booking := &domain.Booking{
		ShopID:          uc.shopID,
		CustomerName:    name,
		CustomerPhone:   domain.WalkInPhonePlaceholder,
		ServiceName:     serviceName,
		BookingDate:     uc.today(),
		StartTime:       req.StartTime,
		DurationMinutes: domain.DefaultServiceDurationMinutes,
		Status:          domain.StatusConfirmed,
		Type:            domain.TypeWalkIn,
	}

	// Цена и длительность по возможности; неизвестная услуга не мешает записи
	service, err := uc.serviceRepo.GetByName(ctx, serviceName)
	switch {
	case err == nil:
		booking.ServiceName = service.Name
		booking.ServicePrice = ptr.Ptr(service.Price)
		if service.DurationMinutes > 0 {
			booking.DurationMinutes = service.DurationMinutes
		}
	case errors.Is(err, serviceRepo.ErrServiceNotFound):
		uc.logger.Warn("CreateWalkIn: service %q is not in the price list, price left empty", serviceName)
	default:
		uc.logger.Error("CreateWalkIn: failed to get service %q: %v", serviceName, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateWalkIn: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateWalkIn: successfully created booking id=%d", created.ID)
	uc.metrics.BookingCreated(string(domain.TypeWalkIn))

	return &Response{
		ID:          created.ID,
		BookingDate: created.BookingDate,
		DateTime:    created.DateTime(),
	}, nil
}

func (uc *UseCase) today() time.Time {
	now := uc.timeProvider.Now().In(uc.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func validate(name, serviceName string, req *Request) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if serviceName == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	return nil
}

package get_stats

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yash635644/barber-backend/internal/domain"
)

// UseCase сводка для панели администратора
// Считается на каждый запрос, без кеша
type UseCase struct {
	bookingRepo  BookingRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; location задает "сейчас" салона
func NewUseCase(bookingRepo BookingRepository, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
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

// Execute собирает выручку по месяцам и счетчики записей
func (uc *UseCase) Execute(ctx context.Context) (*domain.Stats, error) {
	now := uc.timeProvider.Now().In(uc.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	completed, err := uc.bookingRepo.ListCompletedWithPrice(ctx)
	if err != nil {
		uc.logger.Error("GetStats: failed to list completed bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list completed bookings: %v", ErrInternal, err)
	}

	totals := monthlyTotals(completed)

	todayCount, err := uc.bookingRepo.Count(ctx, domain.BookingsFilter{
		Date:     &today,
		Statuses: domain.ScheduledStatuses,
	})
	if err != nil {
		uc.logger.Error("GetStats: failed to count today bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count today bookings: %v", ErrInternal, err)
	}

	pendingCount, err := uc.bookingRepo.Count(ctx, domain.BookingsFilter{
		Statuses: []domain.BookingStatus{domain.StatusPending},
	})
	if err != nil {
		uc.logger.Error("GetStats: failed to count pending bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count pending bookings: %v", ErrInternal, err)
	}

	current, ok := totals[now.Format(domain.MonthFormat)]
	if !ok {
		current = decimal.Zero
	}

	stats := &domain.Stats{
		CurrentMonthRevenue: current,
		History:             history(totals),
		TodayBookings:       todayCount,
		PendingBookings:     pendingCount,
	}

	uc.logger.Info("GetStats: %d completed bookings over %d months, today=%d, pending=%d",
		len(completed), len(stats.History), todayCount, pendingCount)

	return stats, nil
}

package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/yash635644/barber-backend/internal/domain"
	bookingRepo "github.com/yash635644/barber-backend/internal/infra/storage/booking"
	"github.com/yash635644/barber-backend/internal/service/bookings/models"
)

// Service чтение бронирований для админки
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает все бронирования, новые сначала
// При указании даты список отсортирован по времени начала
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	filter := domain.BookingsFilter{Date: req.Date}

	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("ListBookings: invalid status=%q", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Statuses = []domain.BookingStatus{status}
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

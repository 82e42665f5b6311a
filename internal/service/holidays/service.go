package holidays

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yash635644/barber-backend/internal/domain"
	holidayRepo "github.com/yash635644/barber-backend/internal/infra/storage/holiday"
	"github.com/yash635644/barber-backend/internal/service/holidays/models"
)

// Service управление выходными и особыми днями
// Дубликаты на одну дату не проверяются
type Service struct {
	repo         HolidayRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса; location задает, какой день считать "сегодня"
func NewService(repo HolidayRepository, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:         repo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// List возвращает все записи по возрастанию даты
func (s *Service) List(ctx context.Context) ([]models.HolidayResponse, error) {
	holidays, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainHolidayList(holidays), nil
}

// Upcoming возвращает записи начиная с сегодняшнего дня (по времени магазина)
func (s *Service) Upcoming(ctx context.Context) ([]models.HolidayResponse, error) {
	now := s.timeProvider.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	holidays, err := s.repo.ListFrom(ctx, today)
	if err != nil {
		s.logger.Error("UpcomingHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upcoming - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainHolidayList(holidays), nil
}

// Create добавляет запись о выходном
func (s *Service) Create(ctx context.Context, req *models.HolidayRequest) (*models.HolidayResponse, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		s.logger.Warn("CreateHoliday: invalid date=%q", req.Date)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		s.logger.Warn("CreateHoliday: empty status for date=%s", req.Date)
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	if len(req.Note) > domain.MaxHolidayNoteLength {
		return nil, fmt.Errorf("%w: note is too long", ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, &domain.Holiday{
		Date:   date,
		Status: domain.HolidayStatus(status),
		Note:   req.Note,
	})
	if err != nil {
		s.logger.Error("CreateHoliday: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateHoliday: created holiday id=%d, date=%s, status=%s",
		created.ID, created.Date.Format(domain.DateFormat), created.Status)
	resp := models.FromDomainHoliday(created)
	return &resp, nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			s.logger.Warn("DeleteHoliday: holiday id=%d not found", id)
			return ErrHolidayNotFound
		}
		s.logger.Error("DeleteHoliday: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteHoliday: deleted holiday id=%d", id)
	return nil
}

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/yash635644/barber-backend/internal/domain"
	serviceRepo "github.com/yash635644/barber-backend/internal/infra/storage/service"
	"github.com/yash635644/barber-backend/internal/service/catalog/models"
)

// Service управление прайс-листом
// Удаление услуги не затрагивает бронирования: они хранят название по значению
type Service struct {
	repo   ServiceRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса прайс-листа
func NewService(repo ServiceRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает все услуги
func (s *Service) List(ctx context.Context) ([]models.ServiceResponse, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Create добавляет услугу
func (s *Service) Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	service := req.ToDomain(0)
	if err := validateService(service); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, service)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrDuplicateName) {
			s.logger.Warn("CreateService: duplicate name=%q", service.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d, name=%q", created.ID, created.Name)
	resp := models.FromDomainService(created)
	return &resp, nil
}

// Update перезаписывает услугу целиком
func (s *Service) Update(ctx context.Context, id int64, req *models.ServiceRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	service := req.ToDomain(id)
	if err := validateService(service); err != nil {
		s.logger.Warn("UpdateService: validation failed for id=%d: %v", id, err)
		return err
	}

	if err := s.repo.Update(ctx, service); err != nil {
		switch {
		case errors.Is(err, serviceRepo.ErrServiceNotFound):
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return ErrServiceNotFound
		case errors.Is(err, serviceRepo.ErrDuplicateName):
			s.logger.Warn("UpdateService: duplicate name=%q", service.Name)
			return ErrDuplicateName
		default:
			s.logger.Error("UpdateService: repository error for id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateService: updated service id=%d", id)
	return nil
}

// Delete удаляет услугу
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: deleted service id=%d", id)
	return nil
}

func validateService(s *domain.Service) error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(s.Name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if s.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if s.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}

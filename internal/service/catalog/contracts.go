package catalog

import (
	"context"

	"github.com/yash635644/barber-backend/internal/domain"
)

// ServiceRepository интерфейс репозитория прайс-листа
type ServiceRepository interface {
	List(ctx context.Context) ([]*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package manage_services

import (
	"context"

	"github.com/yash635644/barber-backend/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) ([]models.ServiceResponse, error)
	Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error)
	Update(ctx context.Context, id int64, req *models.ServiceRequest) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

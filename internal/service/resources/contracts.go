package resources

import (
	"context"

	"github.com/m04kA/CRS-BookingService/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context, filter domain.ResourcesFilter) ([]*domain.Resource, error)
	Update(ctx context.Context, resource *domain.Resource) error
	UpdateStatus(ctx context.Context, id string, status domain.ResourceStatus) (*domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

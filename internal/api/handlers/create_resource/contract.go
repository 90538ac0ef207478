package create_resource

import (
	"context"

	"github.com/m04kA/CRS-BookingService/internal/service/resources/models"
)

type ResourceService interface {
	Create(ctx context.Context, req *models.CreateResourceRequest) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

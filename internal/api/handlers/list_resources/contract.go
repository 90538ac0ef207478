package list_resources

import (
	"context"

	"github.com/m04kA/CRS-BookingService/internal/service/resources/models"
)

type ResourceService interface {
	List(ctx context.Context, req *models.ListResourcesRequest) (*models.ResourceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_resource_status

import (
	"context"

	"github.com/m04kA/CRS-BookingService/internal/service/resources/models"
)

type ResourceService interface {
	UpdateStatus(ctx context.Context, id string, status string) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

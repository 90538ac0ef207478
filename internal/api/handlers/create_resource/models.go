package create_resource

import "github.com/m04kA/CRS-BookingService/internal/service/resources/models"

// CreateResourceRequest HTTP request model
type CreateResourceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateResourceRequest) ToServiceRequest() *models.CreateResourceRequest {
	return &models.CreateResourceRequest{
		Name:        r.Name,
		Type:        r.Type,
		Description: r.Description,
		Location:    r.Location,
	}
}

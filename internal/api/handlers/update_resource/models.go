package update_resource

import "github.com/m04kA/CRS-BookingService/internal/service/resources/models"

// UpdateResourceRequest HTTP request model
type UpdateResourceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateResourceRequest) ToServiceRequest() *models.UpdateResourceRequest {
	return &models.UpdateResourceRequest{
		Name:        r.Name,
		Type:        r.Type,
		Description: r.Description,
		Location:    r.Location,
	}
}

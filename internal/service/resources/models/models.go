package models

import (
	"time"

	"github.com/m04kA/CRS-BookingService/internal/domain"
)

// Request модели

// CreateResourceRequest запрос на создание ресурса
type CreateResourceRequest struct {
	Name        string
	Type        string
	Description *string
	Location    *string
}

// UpdateResourceRequest запрос на административное редактирование ресурса
type UpdateResourceRequest struct {
	Name        string
	Type        string
	Description *string
	Location    *string
}

// ListResourcesRequest запрос на получение списка ресурсов
type ListResourcesRequest struct {
	Type   *string
	Status *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListResourcesRequest) ToDomainFilter() (domain.ResourcesFilter, error) {
	var filter domain.ResourcesFilter

	if r.Type != nil {
		t := domain.ResourceType(*r.Type)
		if !t.Valid() {
			return filter, ErrInvalidType
		}
		filter.Type = &t
	}

	if r.Status != nil {
		s := domain.ResourceStatus(*r.Status)
		if !s.Valid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &s
	}

	return filter, nil
}

// Response модели

// ResourceResponse ответ с данными ресурса
type ResourceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ResourceListResponse ответ со списком ресурсов
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// Методы конвертации

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(r *domain.Resource) *ResourceResponse {
	if r == nil {
		return nil
	}
	return &ResourceResponse{
		ID:          r.ID,
		Name:        r.Name,
		Type:        string(r.Type),
		Description: r.Description,
		Location:    r.Location,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainResourceList конвертирует слайс domain моделей в DTO списка
func FromDomainResourceList(resources []*domain.Resource) *ResourceListResponse {
	resp := &ResourceListResponse{
		Resources: make([]ResourceResponse, 0, len(resources)),
	}
	for _, r := range resources {
		resp.Resources = append(resp.Resources, *FromDomainResource(r))
	}
	return resp
}

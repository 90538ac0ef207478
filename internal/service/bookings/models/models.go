package models

import (
	"time"

	"github.com/m04kA/CRS-BookingService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
// Оба фильтра опциональны и комбинируются по AND
type ListBookingsRequest struct {
	ResourceID  *string
	RequesterID *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() domain.BookingsFilter {
	return domain.BookingsFilter{
		ResourceID:  r.ResourceID,
		RequesterID: r.RequesterID,
	}
}

// Response модели

// ResourceSummary данные ресурса, присоединяемые к бронированию на чтении
type ResourceSummary struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Location *string `json:"location,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string    `json:"id"`
	ResourceID    string    `json:"resourceId"`
	RequesterID   string    `json:"requesterId"`
	RequesterName string    `json:"requesterName"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Purpose       string    `json:"purpose"`
	Status        string    `json:"status"`

	// Данные ресурса (только в списочных ответах, где выполняется JOIN)
	Resource *ResourceSummary `json:"resource,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		ResourceID:    b.ResourceID,
		RequesterID:   b.RequesterID,
		RequesterName: b.RequesterName,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Purpose:       b.Purpose,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.ResourceName != "" {
		resp.Resource = &ResourceSummary{
			Name:     b.ResourceName,
			Type:     string(b.ResourceType),
			Location: b.ResourceLocation,
		}
	}

	return resp
}

// FromDomainBookingList конвертирует слайс domain моделей в DTO списка
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

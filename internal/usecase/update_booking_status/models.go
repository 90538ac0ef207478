package update_booking_status

import (
	"time"

	"github.com/m04kA/CRS-BookingService/internal/domain"
)

// Request модель запроса на изменение статуса бронирования
type Request struct {
	BookingID string // ID бронирования
	Status    string // Целевой статус (Approved или Rejected)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID            string
	ResourceID    string
	RequesterID   string
	RequesterName string
	StartTime     time.Time
	EndTime       time.Time
	Purpose       string
	Status        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует domain модель в response
func fromDomain(b *domain.Booking) *Response {
	return &Response{
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
}

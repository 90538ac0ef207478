package create_booking

import (
	"time"

	"github.com/m04kA/CRS-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ResourceID    string    // ID ресурса
	RequesterID   string    // Внешний идентификатор заявителя
	RequesterName string    // Имя заявителя
	StartTime     time.Time // Начало интервала (включительно)
	EndTime       time.Time // Конец интервала (не включительно)
	Purpose       string    // Цель бронирования
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	ResourceID    string
	RequesterID   string
	RequesterName string
	StartTime     time.Time
	EndTime       time.Time
	Purpose       string
	Status        string // Всегда Pending для нового бронирования

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

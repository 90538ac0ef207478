package create_booking

import (
	"time"

	createBooking "github.com/m04kA/CRS-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceID    string `json:"resourceId" validate:"required"`
	RequesterID   string `json:"requesterId" validate:"required"`
	RequesterName string `json:"requesterName" validate:"required"`
	StartTime     string `json:"startTime" validate:"required"` // RFC 3339
	EndTime       string `json:"endTime" validate:"required"`   // RFC 3339
	Purpose       string `json:"purpose" validate:"required"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string `json:"id"`
	ResourceID    string `json:"resourceId"`
	RequesterID   string `json:"requesterId"`
	RequesterName string `json:"requesterName"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Purpose       string `json:"purpose"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Временные метки принимаются как абсолютные инстанты в RFC 3339
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ResourceID:    r.ResourceID,
		RequesterID:   r.RequesterID,
		RequesterName: r.RequesterName,
		StartTime:     start,
		EndTime:       end,
		Purpose:       r.Purpose,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ResourceID:    resp.ResourceID,
		RequesterID:   resp.RequesterID,
		RequesterName: resp.RequesterName,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		Purpose:       resp.Purpose,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}

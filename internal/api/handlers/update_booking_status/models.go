package update_booking_status

import (
	"time"

	updateStatus "github.com/m04kA/CRS-BookingService/internal/usecase/update_booking_status"
)

// UpdateBookingStatusRequest HTTP request model
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *BookingResponse {
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

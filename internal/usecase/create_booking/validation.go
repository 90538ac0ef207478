package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/CRS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ResourceID) == "" {
		return fmt.Errorf("%w: resourceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RequesterID) == "" {
		return fmt.Errorf("%w: requesterId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RequesterName) == "" {
		return fmt.Errorf("%w: requesterName is required", ErrInvalidInput)
	}

	if len(req.RequesterName) > domain.MaxRequesterNameLength {
		return fmt.Errorf("%w: requesterName exceeds %d characters", ErrInvalidInput, domain.MaxRequesterNameLength)
	}

	if strings.TrimSpace(req.Purpose) == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}

	if len(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose exceeds %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInterval)
	}

	// Строгое неравенство: нулевая длительность не допускается
	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInterval)
	}

	return nil
}

// findConflict возвращает первое активное бронирование, пересекающееся с
// запрошенным интервалом, либо nil
// Интервалы полузамкнутые: бронирование, заканчивающееся ровно в момент
// начала другого, конфликтом не считается
func findConflict(req *Request, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.OverlapsInterval(req.StartTime, req.EndTime) {
			return b
		}
	}
	return nil
}

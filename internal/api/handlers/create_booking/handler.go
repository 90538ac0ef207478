package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/CRS-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/CRS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidTime         = "invalid time format, RFC 3339 timestamp expected"
	msgConflict            = "This resource is already booked for the selected time slot."
	msgResourceUnavailable = "This resource is currently unavailable for booking."
	msgResourceNotFound    = "resource not found"
	msgInvalidInterval     = "startTime must be before endTime"
	msgInvalidInput        = "missing or invalid booking fields"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом временных меток)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse timestamps: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTimeSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: resource_id=%s, requester_id=%s",
				req.ResourceID, req.RequesterID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, createBooking.ErrResourceUnavailable):
			h.logger.Warn("POST /bookings - Resource unavailable: resource_id=%s", req.ResourceID)
			handlers.RespondConflict(w, msgResourceUnavailable)

		case errors.Is(err, createBooking.ErrResourceNotFound):
			h.logger.Warn("POST /bookings - Resource not found: resource_id=%s", req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: resource_id=%s", req.ResourceID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: resource_id=%s, error=%v",
				req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, resource_id=%s",
		result.ID, req.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

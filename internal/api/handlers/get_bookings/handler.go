package get_bookings

import (
	"net/http"

	"github.com/m04kA/CRS-BookingService/internal/api/handlers"
	"github.com/m04kA/CRS-BookingService/internal/service/bookings/models"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: resourceId, requesterId (опционально, комбинируются по AND)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}

	if v := r.URL.Query().Get("resourceId"); v != "" {
		req.ResourceID = &v
	}
	if v := r.URL.Query().Get("requesterId"); v != "" {
		req.RequesterID = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}

package update_resource_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CRS-BookingService/internal/api/handlers"
	"github.com/m04kA/CRS-BookingService/internal/service/resources"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "resource not found"
	msgInvalidStatus      = "status must be Available or Unavailable"
)

// UpdateResourceStatusRequest HTTP request model
type UpdateResourceStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type Handler struct {
	service ResourceService
	logger  Logger
}

func NewHandler(service ResourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/resources/{resourceId}/status
// Административный override: Unavailable выводит ресурс из оборота
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceID := vars["resourceId"]

	var req UpdateResourceStatusRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /resources/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), resourceID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrResourceNotFound):
			h.logger.Warn("PATCH /resources/{id}/status - Resource not found: resource_id=%s", resourceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("PATCH /resources/{id}/status - Invalid status: resource_id=%s, status=%s",
				resourceID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /resources/{id}/status - Failed to update status: resource_id=%s, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /resources/{id}/status - Status updated successfully: resource_id=%s, status=%s",
		resourceID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package update_resource

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
	msgInvalidFields      = "name and a valid type (Lab, Hall or Equipment) are required"
)

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

// Handle PUT /api/v1/resources/{resourceId}
// Административное редактирование метаданных; статус меняется отдельной ручкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceID := vars["resourceId"]

	var req UpdateResourceRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /resources/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), resourceID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrResourceNotFound):
			h.logger.Warn("PUT /resources/{id} - Resource not found: resource_id=%s", resourceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("PUT /resources/{id} - Invalid fields: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("PUT /resources/{id} - Failed to update resource: resource_id=%s, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /resources/{id} - Resource updated successfully: resource_id=%s", resourceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

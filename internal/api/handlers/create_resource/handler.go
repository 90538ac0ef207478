package create_resource

import (
	"errors"
	"net/http"

	"github.com/m04kA/CRS-BookingService/internal/api/handlers"
	"github.com/m04kA/CRS-BookingService/internal/service/resources"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateResourceRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /resources - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("POST /resources - Invalid fields: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("POST /resources - Failed to create resource: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources - Resource created successfully: resource_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package list_resources

import (
	"errors"
	"net/http"

	"github.com/m04kA/CRS-BookingService/internal/api/handlers"
	"github.com/m04kA/CRS-BookingService/internal/service/resources"
	"github.com/m04kA/CRS-BookingService/internal/service/resources/models"
)

const msgInvalidParams = "invalid query parameters"

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

// Handle GET /api/v1/resources
// Query params: type, status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListResourcesRequest{}

	if v := r.URL.Query().Get("type"); v != "" {
		req.Type = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		req.Status = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("GET /resources - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /resources - Failed to list resources: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources - Resources retrieved successfully: count=%d", len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, result.Resources)
}

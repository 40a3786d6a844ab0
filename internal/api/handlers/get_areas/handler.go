package get_areas

import (
	"net/http"

	"github.com/m04kA/CWS-ReservationService/internal/api/handlers"
)

type Handler struct {
	service AreaService
	logger  Logger
}

func NewHandler(service AreaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/areas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /areas - Failed to get areas: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /areas - Areas retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_area

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-ReservationService/internal/api/handlers"
	"github.com/m04kA/CWS-ReservationService/internal/service/areas"
)

const (
	msgInvalidAreaID = "некорректный ID области"
	msgNotFound      = "область не найдена"
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

// Handle GET /api/v1/areas/{areaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	areaIDStr := vars["areaId"]

	areaID, err := strconv.ParseInt(areaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /areas/{areaId} - Invalid area ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAreaID)
		return
	}

	result, err := h.service.GetByID(r.Context(), areaID)
	if err != nil {
		switch {
		case errors.Is(err, areas.ErrAreaNotFound):
			h.logger.Warn("GET /areas/{areaId} - Area not found: area_id=%d", areaID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /areas/{areaId} - Failed to get area: area_id=%d, error=%v", areaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /areas/{areaId} - Area retrieved successfully: area_id=%d", areaID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package update_area

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-ReservationService/internal/api/handlers"
	"github.com/m04kA/CWS-ReservationService/internal/service/areas"
	"github.com/m04kA/CWS-ReservationService/internal/service/areas/models"
)

const (
	msgInvalidAreaID      = "некорректный ID области"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные области"
	msgNotFound           = "область не найдена"
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

// Handle PUT /api/v1/areas/{areaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	areaIDStr := vars["areaId"]

	areaID, err := strconv.ParseInt(areaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /areas/{areaId} - Invalid area ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAreaID)
		return
	}

	var req models.UpdateAreaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /areas/{areaId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), areaID, &req)
	if err != nil {
		switch {
		case errors.Is(err, areas.ErrAreaNotFound):
			h.logger.Warn("PUT /areas/{areaId} - Area not found: area_id=%d", areaID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, areas.ErrInvalidInput):
			h.logger.Warn("PUT /areas/{areaId} - Invalid input: area_id=%d, error=%v", areaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /areas/{areaId} - Failed to update area: area_id=%d, error=%v", areaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /areas/{areaId} - Area updated successfully: area_id=%d", areaID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

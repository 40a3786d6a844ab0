package create_area

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWS-ReservationService/internal/api/handlers"
	"github.com/m04kA/CWS-ReservationService/internal/service/areas"
	"github.com/m04kA/CWS-ReservationService/internal/service/areas/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные области"
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

// Handle POST /api/v1/areas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAreaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /areas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, areas.ErrInvalidInput):
			h.logger.Warn("POST /areas - Invalid input: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /areas - Failed to create area: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /areas - Area created successfully: area_id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

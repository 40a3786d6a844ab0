package get_area_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-ReservationService/internal/api/handlers"
	"github.com/m04kA/CWS-ReservationService/internal/service/reservations"
	"github.com/m04kA/CWS-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

const (
	msgInvalidAreaID = "некорректный ID области"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput  = "некорректные параметры запроса"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/areas/{areaId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	areaIDStr := vars["areaId"]

	areaID, err := strconv.ParseInt(areaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /areas/{areaId}/reservations - Invalid area ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAreaID)
		return
	}

	serviceReq := &models.GetAreaReservationsRequest{AreaID: areaID}

	// Опциональные query параметры
	query := r.URL.Query()

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := types.ParseCalendarDate(startDateStr)
		if err != nil {
			h.logger.Warn("GET /areas/{areaId}/reservations - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := types.ParseCalendarDate(endDateStr)
		if err != nil {
			h.logger.Warn("GET /areas/{areaId}/reservations - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		serviceReq.Status = &status
	}

	if includeInactive := query.Get("includeInactive"); includeInactive == "true" {
		serviceReq.IncludeInactive = true
	}

	result, err := h.service.GetAreaReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /areas/{areaId}/reservations - Invalid input: area_id=%d, error=%v", areaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /areas/{areaId}/reservations - Failed to get reservations: area_id=%d, error=%v",
				areaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /areas/{areaId}/reservations - Reservations retrieved successfully: area_id=%d, count=%d",
		areaID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

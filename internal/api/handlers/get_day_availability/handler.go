package get_day_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-ReservationService/internal/api/handlers"
	getDayAvailability "github.com/m04kA/CWS-ReservationService/internal/usecase/get_day_availability"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

const (
	msgInvalidAreaID = "некорректный ID области"
	msgMissingDate   = "отсутствует обязательный параметр date"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAreaNotFound  = "область не найдена"
)

// DayAvailabilityResponse HTTP response model
type DayAvailabilityResponse struct {
	AreaID       int64  `json:"areaId"`
	Date         string `json:"date"`
	ResourceKind string `json:"resourceKind"`
	IsOfficeDay  bool   `json:"isOfficeDay"`
	FullyBooked  bool   `json:"fullyBooked"`
	SeatsTaken   int    `json:"seatsTaken"`
	Capacity     int    `json:"capacity"`
}

type Handler struct {
	useCase GetDayAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDayAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/areas/{areaId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	areaIDStr := vars["areaId"]

	areaID, err := strconv.ParseInt(areaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /areas/{areaId}/availability - Invalid area ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAreaID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /areas/{areaId}/availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := types.ParseCalendarDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /areas/{areaId}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayAvailability.Request{
		AreaID: areaID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayAvailability.ErrAreaNotFound):
			h.logger.Warn("GET /areas/{areaId}/availability - Area not found: area_id=%d", areaID)
			handlers.RespondNotFound(w, msgAreaNotFound)

		case errors.Is(err, getDayAvailability.ErrInvalidInput):
			h.logger.Warn("GET /areas/{areaId}/availability - Invalid input: area_id=%d, error=%v", areaID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /areas/{areaId}/availability - Failed to get availability: area_id=%d, error=%v",
				areaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &DayAvailabilityResponse{
		AreaID:       result.AreaID,
		Date:         result.Date.String(),
		ResourceKind: result.ResourceKind,
		IsOfficeDay:  result.IsOfficeDay,
		FullyBooked:  result.FullyBooked,
		SeatsTaken:   result.SeatsTaken,
		Capacity:     result.Capacity,
	}

	h.logger.Info("GET /areas/{areaId}/availability - Availability retrieved: area_id=%d, date=%s, fully_booked=%t",
		areaID, dateStr, result.FullyBooked)
	handlers.RespondJSON(w, http.StatusOK, response)
}

package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-ReservationService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/CWS-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

const (
	msgInvalidAreaID   = "некорректный ID области"
	msgMissingDate     = "отсутствует обязательный параметр date"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность слота"
	msgInvalidSeats    = "некорректное количество мест"
	msgAreaNotFound    = "область не найдена"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/areas/{areaId}/available-slots?date=YYYY-MM-DD&duration=60&seats=2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	areaIDStr := vars["areaId"]

	areaID, err := strconv.ParseInt(areaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /areas/{areaId}/available-slots - Invalid area ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAreaID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /areas/{areaId}/available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := types.ParseCalendarDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /areas/{areaId}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	useCaseReq := &getAvailableSlots.Request{
		AreaID: areaID,
		Date:   date,
	}

	if durationStr := query.Get("duration"); durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /areas/{areaId}/available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		useCaseReq.DurationMinutes = duration
	}

	if seatsStr := query.Get("seats"); seatsStr != "" {
		seats, err := strconv.Atoi(seatsStr)
		if err != nil {
			h.logger.Warn("GET /areas/{areaId}/available-slots - Invalid seats: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSeats)
			return
		}
		useCaseReq.Seats = seats
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrAreaNotFound):
			h.logger.Warn("GET /areas/{areaId}/available-slots - Area not found: area_id=%d", areaID)
			handlers.RespondNotFound(w, msgAreaNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /areas/{areaId}/available-slots - Invalid input: area_id=%d, error=%v", areaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /areas/{areaId}/available-slots - Failed to get slots: area_id=%d, error=%v",
				areaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /areas/{areaId}/available-slots - Slots retrieved successfully: area_id=%d, date=%s, count=%d",
		areaID, dateStr, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

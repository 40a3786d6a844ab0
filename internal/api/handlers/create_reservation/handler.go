package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWS-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/CWS-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgAreaNotFound        = "область не найдена"
	msgTimeConflict        = "интервал пересекается с существующим бронированием"
	msgCapacityExceeded    = "недостаточно свободных мест на выбранную дату"
	msgDateFullyBooked     = "выбранная дата полностью занята"
	msgOutsideOfficeHours  = "интервал выходит за рабочие часы офиса"
	msgNonOfficeDay        = "выбранная дата не является рабочим днём"
	msgPastDateTime        = "нельзя бронировать в прошлом"
	msgRecurrenceTooLong   = "серия раскрывается в слишком много дат"
	msgAllDatesRejected    = "ни одна дата серии недоступна"
	msgInvalidInput        = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrAreaNotFound):
			h.logger.Warn("POST /reservations - Area not found: area_id=%d", req.AreaID)
			handlers.RespondNotFound(w, msgAreaNotFound)

		case errors.Is(err, createReservation.ErrTimeConflict):
			h.logger.Warn("POST /reservations - Time conflict: user_id=%d, area_id=%d", req.UserID, req.AreaID)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: user_id=%d, area_id=%d", req.UserID, req.AreaID)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrDateFullyBooked):
			h.logger.Warn("POST /reservations - Date fully booked: user_id=%d, area_id=%d", req.UserID, req.AreaID)
			handlers.RespondError(w, http.StatusConflict, msgDateFullyBooked)

		case errors.Is(err, createReservation.ErrAllDatesRejected):
			h.logger.Warn("POST /reservations - All series dates rejected: user_id=%d, area_id=%d", req.UserID, req.AreaID)
			// Повердатные причины отказа сохраняются в теле ответа
			payload := AllDatesRejectedResponse{Error: msgAllDatesRejected}
			if result != nil {
				payload.Skipped = skippedFromUseCase(result.Skipped)
			}
			handlers.RespondJSON(w, http.StatusConflict, payload)

		case errors.Is(err, createReservation.ErrOutsideOfficeHours):
			h.logger.Warn("POST /reservations - Outside office hours: user_id=%d, area_id=%d", req.UserID, req.AreaID)
			handlers.RespondBadRequest(w, msgOutsideOfficeHours)

		case errors.Is(err, createReservation.ErrNonOfficeDay):
			h.logger.Warn("POST /reservations - Non-office day: user_id=%d, area_id=%d", req.UserID, req.AreaID)
			handlers.RespondBadRequest(w, msgNonOfficeDay)

		case errors.Is(err, createReservation.ErrPastDateTime):
			h.logger.Warn("POST /reservations - Past date/time: user_id=%d, area_id=%d", req.UserID, req.AreaID)
			handlers.RespondBadRequest(w, msgPastDateTime)

		case errors.Is(err, createReservation.ErrRecurrenceTooLong):
			h.logger.Warn("POST /reservations - Recurrence too long: user_id=%d, area_id=%d", req.UserID, req.AreaID)
			handlers.RespondBadRequest(w, msgRecurrenceTooLong)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, area_id=%d, error=%v",
				req.UserID, req.AreaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, area_id=%d, error=%v",
				req.UserID, req.AreaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation(s) created successfully: user_id=%d, area_id=%d, created=%d, skipped=%d",
		req.UserID, req.AreaID, len(response.Reservations), len(response.Skipped))
	handlers.RespondJSON(w, http.StatusCreated, response)
}

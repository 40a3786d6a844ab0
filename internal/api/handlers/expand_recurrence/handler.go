package expand_recurrence

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWS-ReservationService/internal/api/handlers"
	expandRecurrence "github.com/m04kA/CWS-ReservationService/internal/usecase/expand_recurrence"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgAreaNotFound       = "область не найдена"
	msgRecurrenceTooLong  = "серия раскрывается в слишком много дат"
	msgInvalidInput       = "некорректные данные правила повторения"
)

type Handler struct {
	useCase ExpandRecurrenceUseCase
	logger  Logger
}

func NewHandler(useCase ExpandRecurrenceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/recurrence/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ExpandRecurrenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/recurrence/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations/recurrence/preview - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, expandRecurrence.ErrAreaNotFound):
			h.logger.Warn("POST /reservations/recurrence/preview - Area not found: area_id=%d", req.AreaID)
			handlers.RespondNotFound(w, msgAreaNotFound)

		case errors.Is(err, expandRecurrence.ErrRecurrenceTooLong):
			h.logger.Warn("POST /reservations/recurrence/preview - Recurrence too long: area_id=%d", req.AreaID)
			handlers.RespondBadRequest(w, msgRecurrenceTooLong)

		case errors.Is(err, expandRecurrence.ErrInvalidInput):
			h.logger.Warn("POST /reservations/recurrence/preview - Invalid input: area_id=%d, error=%v",
				req.AreaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/recurrence/preview - Failed to expand recurrence: area_id=%d, error=%v",
				req.AreaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations/recurrence/preview - Recurrence expanded: area_id=%d, dates=%d",
		req.AreaID, len(response.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}

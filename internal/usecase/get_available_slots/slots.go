package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AreaID <= 0 {
		return fmt.Errorf("%w: area_id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.DurationMinutes < 0 || req.Seats < 0 {
		return fmt.Errorf("%w: duration and seats must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes != 0 {
		if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: duration must be between %d and %d minutes",
				ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
	}
	return nil
}

// generateSlots перебирает времена начала с шагом 30 минут от открытия до
// закрытия офиса и оставляет только кандидатов, принятых детектором
// конфликтов. Порядок результата - по возрастанию времени начала.
func generateSlots(
	area *domain.Area,
	calendar *domain.OfficeCalendar,
	existing []*domain.Reservation,
	date types.CalendarDate,
	durationMinutes int,
	seats int,
	now time.Time,
) []Slot {
	slots := []Slot{}

	closeTime := calendar.Close()
	candidate := calendar.Open()

	for candidate.IsBefore(closeTime) {
		candidateEnd, err := candidate.AddMinutes(durationMinutes)
		if err != nil {
			// Кандидат выходит за полночь
			break
		}
		// Слот должен целиком помещаться до закрытия
		if closeTime.IsBefore(candidateEnd) {
			break
		}

		checkReq := &domain.ReservationRequest{
			Area:      area,
			Date:      date,
			StartTime: candidate,
			EndTime:   candidateEnd,
			Seats:     seats,
		}

		if decision := domain.CheckReservation(checkReq, calendar, existing, now); decision.Accepted {
			slots = append(slots, Slot{StartTime: candidate, EndTime: candidateEnd})
		}

		next, err := candidate.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		candidate = next
	}

	return slots
}

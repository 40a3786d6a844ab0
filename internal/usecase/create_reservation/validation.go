package create_reservation

import (
	"fmt"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if req.AreaID <= 0 {
		return fmt.Errorf("%w: area_id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Seats < 0 {
		return fmt.Errorf("%w: seats must be positive", ErrInvalidInput)
	}

	// Времена задаются парой: либо обе границы, либо ни одной (full-day)
	if req.StartTime.IsZero() != req.EndTime.IsZero() {
		return fmt.Errorf("%w: start_time and end_time must be set together", ErrInvalidInput)
	}

	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start_time: %v", ErrInvalidInput, err)
		}
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid end_time: %v", ErrInvalidInput, err)
		}
		if !req.StartTime.IsBefore(req.EndTime) {
			return fmt.Errorf("%w: start_time must be before end_time", ErrInvalidInput)
		}

		startMin, err := req.StartTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: invalid start_time: %v", ErrInvalidInput, err)
		}
		endMin, err := req.EndTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: invalid end_time: %v", ErrInvalidInput, err)
		}

		duration := endMin - startMin
		if duration < domain.MinDurationMinutes {
			return fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidInput, domain.MinDurationMinutes)
		}
		if duration > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: duration must not exceed %d minutes", ErrInvalidInput, domain.MaxDurationMinutes)
		}
	}

	return nil
}

// validateAgainstArea проверяет согласованность запроса с видом области
func validateAgainstArea(req *Request, area *domain.Area) error {
	if area.Kind() == domain.FullDay {
		if !req.StartTime.IsZero() {
			return fmt.Errorf("%w: area is booked for whole days, start_time/end_time are not allowed", ErrInvalidInput)
		}
		return nil
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time and end_time are required for this area", ErrInvalidInput)
	}

	if area.Kind() == domain.SeatPool && req.Seats > area.Capacity {
		return fmt.Errorf("%w: seats exceed area capacity", ErrInvalidInput)
	}

	return nil
}

// buildRecurrenceRule преобразует правило повторения запроса в доменное
func buildRecurrenceRule(rec *Recurrence) (*domain.RecurrenceRule, error) {
	rule := &domain.RecurrenceRule{
		Type:     domain.RecurrenceType(rec.Type),
		Interval: rec.Interval,
		EndDate:  rec.EndDate,
	}

	switch rule.Type {
	case domain.RecurrenceDaily, domain.RecurrenceWeekly, domain.RecurrenceMonthly:
	default:
		return nil, fmt.Errorf("%w: unknown recurrence type %q", ErrInvalidInput, rec.Type)
	}

	if rec.Interval < 0 {
		return nil, fmt.Errorf("%w: recurrence interval must be positive", ErrInvalidInput)
	}
	if rec.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: recurrence end_date is required", ErrInvalidInput)
	}

	for _, name := range rec.Weekdays {
		wd, err := domain.ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		rule.Weekdays = append(rule.Weekdays, wd)
	}

	return rule, nil
}

// mapRejectReason переводит причину отказа детектора конфликтов в ошибку usecase
func mapRejectReason(reason domain.RejectReason) error {
	switch reason {
	case domain.ReasonTimeOverlap:
		return ErrTimeConflict
	case domain.ReasonCapacityExceeded:
		return ErrCapacityExceeded
	case domain.ReasonDateFullyBooked:
		return ErrDateFullyBooked
	case domain.ReasonOutsideOfficeHours:
		return ErrOutsideOfficeHours
	case domain.ReasonNonOfficeDay:
		return ErrNonOfficeDay
	case domain.ReasonPastDateTime:
		return ErrPastDateTime
	default:
		return ErrInternal
	}
}

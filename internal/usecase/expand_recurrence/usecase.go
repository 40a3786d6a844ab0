package expand_recurrence

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	areaRepo "github.com/m04kA/CWS-ReservationService/internal/infra/storage/area"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// Request модель запроса предпросмотра серии.
// Повторяет параметры создания бронирования, но ничего не создает.
type Request struct {
	AreaID int64
	Date   types.CalendarDate

	// Нулевые StartTime/EndTime - заявка на весь офисный день
	StartTime types.TimeString
	EndTime   types.TimeString

	Seats int

	Type     string
	Interval int
	EndDate  types.CalendarDate
	Weekdays []string
}

// DateVerdict вердикт проверки одной даты серии
type DateVerdict struct {
	Date     types.CalendarDate
	Accepted bool
	Reason   string // Причина отказа (пусто для принятых дат)
}

// Response модель ответа предпросмотра: раскрытые даты с вердиктами.
// Пустой список дат - корректный результат для правила, не производящего дат.
type Response struct {
	Dates []DateVerdict
}

// UseCase use case для предпросмотра повторяющейся серии без создания бронирований
type UseCase struct {
	reservationRepo ReservationRepository
	areaRepo        AreaRepository
	calendars       CalendarProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	areaRepo AreaRepository,
	calendars CalendarProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		areaRepo:        areaRepo,
		calendars:       calendars,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute раскрывает правило повторения и проверяет каждую дату детектором
// конфликтов на текущем снимке данных. Вердикты носят информационный
// характер: данные могут измениться до фактического создания серии.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExpandRecurrence: area=%d, start=%s, type=%s, end=%s",
		req.AreaID, req.Date, req.Type, req.EndDate)

	rule, err := buildRule(req)
	if err != nil {
		uc.logger.Warn("ExpandRecurrence: invalid rule: %v", err)
		return nil, err
	}

	area, err := uc.areaRepo.GetByID(ctx, req.AreaID)
	if err != nil {
		if errors.Is(err, areaRepo.ErrAreaNotFound) {
			uc.logger.Warn("ExpandRecurrence: area id=%d not found", req.AreaID)
			return nil, ErrAreaNotFound
		}
		uc.logger.Error("ExpandRecurrence: failed to get area id=%d: %v", req.AreaID, err)
		return nil, fmt.Errorf("%w: failed to get area: %v", ErrInternal, err)
	}

	// Предпросмотр нормализует запрос теми же правилами, что и создание:
	// иначе вердикты разойдутся с фактическим поведением серии
	if err := validateAgainstArea(req, area); err != nil {
		uc.logger.Warn("ExpandRecurrence: request does not match area id=%d: %v", req.AreaID, err)
		return nil, err
	}
	seats := req.Seats
	if seats == 0 {
		seats = 1
	}

	calendar, err := uc.calendars.GetDomain(ctx)
	if err != nil {
		uc.logger.Error("ExpandRecurrence: failed to get office calendar: %v", err)
		return nil, fmt.Errorf("%w: failed to get office calendar: %v", ErrInternal, err)
	}

	dates, err := rule.Expand(req.Date)
	if err != nil {
		if errors.Is(err, domain.ErrRecurrenceTooLong) {
			return nil, ErrRecurrenceTooLong
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := uc.timeProvider.Now()
	resp := &Response{Dates: make([]DateVerdict, 0, len(dates))}

	for _, date := range dates {
		existing, err := uc.reservationRepo.GetActiveByAreaAndDate(ctx, req.AreaID, date)
		if err != nil {
			uc.logger.Error("ExpandRecurrence: failed to get reservations for area=%d date=%s: %v",
				req.AreaID, date, err)
			return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		checkReq := &domain.ReservationRequest{
			Area:      area,
			Date:      date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Seats:     seats,
		}

		verdict := DateVerdict{Date: date}
		if decision := domain.CheckReservation(checkReq, calendar, existing, now); decision.Accepted {
			verdict.Accepted = true
		} else {
			verdict.Reason = string(decision.Reason)
		}

		resp.Dates = append(resp.Dates, verdict)
	}

	uc.logger.Info("ExpandRecurrence: %d dates expanded for area=%d", len(resp.Dates), req.AreaID)
	return resp, nil
}

// buildRule валидирует запрос и собирает доменное правило повторения
func buildRule(req *Request) (*domain.RecurrenceRule, error) {
	if req.AreaID <= 0 {
		return nil, fmt.Errorf("%w: area_id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: end_date is required", ErrInvalidInput)
	}
	if req.Interval < 0 || req.Seats < 0 {
		return nil, fmt.Errorf("%w: interval and seats must be positive", ErrInvalidInput)
	}
	if req.StartTime.IsZero() != req.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time and end_time must be set together", ErrInvalidInput)
	}
	if !req.StartTime.IsZero() && !req.StartTime.IsBefore(req.EndTime) {
		return nil, fmt.Errorf("%w: start_time must be before end_time", ErrInvalidInput)
	}

	rule := &domain.RecurrenceRule{
		Type:     domain.RecurrenceType(req.Type),
		Interval: req.Interval,
		EndDate:  req.EndDate,
	}

	switch rule.Type {
	case domain.RecurrenceDaily, domain.RecurrenceWeekly, domain.RecurrenceMonthly:
	default:
		return nil, fmt.Errorf("%w: unknown recurrence type %q", ErrInvalidInput, req.Type)
	}

	for _, name := range req.Weekdays {
		wd, err := domain.ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		rule.Weekdays = append(rule.Weekdays, wd)
	}

	return rule, nil
}

// validateAgainstArea проверяет согласованность запроса с видом области -
// тем же правилам следует создание бронирования
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

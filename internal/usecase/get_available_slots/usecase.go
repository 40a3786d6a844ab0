package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	areaRepo "github.com/m04kA/CWS-ReservationService/internal/infra/storage/area"
)

// UseCase use case для получения доступных слотов
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

// Execute выполняет use case получения доступных слотов.
// Кандидаты перебираются с шагом 30 минут от открытия до закрытия офиса;
// каждый кандидат прогоняется через тот же детектор конфликтов, что и
// создание бронирования, поэтому любой слот из ответа гарантированно
// проходит проверку при бронировании на том же снимке данных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: area=%d, date=%s, duration=%d, seats=%d",
		req.AreaID, req.Date, req.DurationMinutes, req.Seats)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.SlotStepMinutes
	}
	seats := req.Seats
	if seats == 0 {
		seats = 1
	}

	resp := &Response{
		AreaID:          req.AreaID,
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           []Slot{},
	}

	// 2. Получаем область
	area, err := uc.areaRepo.GetByID(ctx, req.AreaID)
	if err != nil {
		if errors.Is(err, areaRepo.ErrAreaNotFound) {
			uc.logger.Warn("GetAvailableSlots: area id=%d not found", req.AreaID)
			return nil, ErrAreaNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get area id=%d: %v", req.AreaID, err)
		return nil, fmt.Errorf("%w: failed to get area: %v", ErrInternal, err)
	}

	// Full-day области не делятся на интервальные слоты
	if !area.BookedByInterval() {
		uc.logger.Info("GetAvailableSlots: area id=%d is booked for whole days, no interval slots", req.AreaID)
		return resp, nil
	}

	// 3. Получаем календарь офиса
	calendar, err := uc.calendars.GetDomain(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get office calendar: %v", err)
		return nil, fmt.Errorf("%w: failed to get office calendar: %v", ErrInternal, err)
	}

	// Нерабочий день - пустой результат, не ошибка
	if !calendar.IsOfficeDay(req.Date) {
		uc.logger.Info("GetAvailableSlots: %s is not an office day", req.Date)
		return resp, nil
	}

	// 4. Снимок активных бронирований на (область, дата)
	existing, err := uc.reservationRepo.GetActiveByAreaAndDate(ctx, req.AreaID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations for area=%d date=%s: %v",
			req.AreaID, req.Date, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Перебираем кандидатов и фильтруем детектором конфликтов
	now := uc.timeProvider.Now()
	resp.Slots = generateSlots(area, calendar, existing, req.Date, duration, seats, now)

	uc.logger.Info("GetAvailableSlots: %d slots available for area=%d date=%s",
		len(resp.Slots), req.AreaID, req.Date)
	return resp, nil
}

package get_day_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	areaRepo "github.com/m04kA/CWS-ReservationService/internal/infra/storage/area"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// Request модель запроса доступности дня
type Request struct {
	AreaID int64
	Date   types.CalendarDate
}

// Response модель ответа с доступностью дня
type Response struct {
	AreaID       int64
	Date         types.CalendarDate
	ResourceKind string
	IsOfficeDay  bool
	FullyBooked  bool
	SeatsTaken   int
	Capacity     int
}

// UseCase use case для получения доступности области на дату
type UseCase struct {
	reservationRepo ReservationRepository
	areaRepo        AreaRepository
	calendars       CalendarProvider
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
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.AreaID <= 0 {
		return nil, fmt.Errorf("%w: area_id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	area, err := uc.areaRepo.GetByID(ctx, req.AreaID)
	if err != nil {
		if errors.Is(err, areaRepo.ErrAreaNotFound) {
			uc.logger.Warn("GetDayAvailability: area id=%d not found", req.AreaID)
			return nil, ErrAreaNotFound
		}
		uc.logger.Error("GetDayAvailability: failed to get area id=%d: %v", req.AreaID, err)
		return nil, fmt.Errorf("%w: failed to get area: %v", ErrInternal, err)
	}

	calendar, err := uc.calendars.GetDomain(ctx)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get office calendar: %v", err)
		return nil, fmt.Errorf("%w: failed to get office calendar: %v", ErrInternal, err)
	}

	resp := &Response{
		AreaID:       area.ID,
		Date:         req.Date,
		ResourceKind: string(area.Kind()),
		IsOfficeDay:  calendar.IsOfficeDay(req.Date),
		Capacity:     area.Capacity,
	}

	// Нерабочий день занят целиком по определению
	if !resp.IsOfficeDay {
		resp.FullyBooked = true
		return resp, nil
	}

	existing, err := uc.reservationRepo.GetActiveByAreaAndDate(ctx, req.AreaID, req.Date)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get reservations for area=%d date=%s: %v",
			req.AreaID, req.Date, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	resp.SeatsTaken = domain.SeatsTaken(existing)
	resp.FullyBooked = domain.IsDateFullyBooked(area, calendar, existing)

	return resp, nil
}

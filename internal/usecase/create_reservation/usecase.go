package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	areaRepo "github.com/m04kA/CWS-ReservationService/internal/infra/storage/area"
	"github.com/m04kA/CWS-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// UseCase use case для создания бронирования (одиночного или серии)
type UseCase struct {
	reservationRepo ReservationRepository
	areaRepo        AreaRepository
	calendars       CalendarProvider
	userClient      UserServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	areaRepo AreaRepository,
	calendars CalendarProvider,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		areaRepo:        areaRepo,
		calendars:       calendars,
		userClient:      userClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции,
// чтобы исключить гонку между конкурентными заявками на одну дату.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, area=%d, date=%s, start=%s, end=%s, seats=%d",
		req.UserID, req.AreaID, req.Date, req.StartTime, req.EndTime, req.Seats)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	if req.Seats == 0 {
		req.Seats = 1
	}

	// 2. Получаем область
	area, err := uc.areaRepo.GetByID(ctx, req.AreaID)
	if err != nil {
		if errors.Is(err, areaRepo.ErrAreaNotFound) {
			uc.logger.Warn("CreateReservation: area id=%d not found", req.AreaID)
			return nil, ErrAreaNotFound
		}
		uc.logger.Error("CreateReservation: failed to get area id=%d: %v", req.AreaID, err)
		return nil, fmt.Errorf("%w: failed to get area: %v", ErrInternal, err)
	}

	// 3. Проверяем согласованность запроса с видом области
	if err := validateAgainstArea(req, area); err != nil {
		uc.logger.Warn("CreateReservation: request does not match area id=%d: %v", req.AreaID, err)
		return nil, err
	}

	// 4. Получаем календарь офиса
	calendar, err := uc.calendars.GetDomain(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get office calendar: %v", err)
		return nil, fmt.Errorf("%w: failed to get office calendar: %v", ErrInternal, err)
	}

	// 5. Получаем имя пользователя с graceful degradation:
	// недоступность UserService не блокирует бронирование, имя остаётся пустым
	var userName *string
	user, err := uc.userClient.GetUserWithGracefulDegradation(ctx, req.UserID)
	switch {
	case err == nil:
		if user != nil {
			userName = &user.Name
		}
	case errors.Is(err, userservice.ErrServiceDegraded):
		uc.logger.Warn("CreateReservation: UserService degraded, reserving without user name for user_id=%d", req.UserID)
	case errors.Is(err, userservice.ErrUserNotFound):
		// Личность подтверждена на границе аутентификации; отсутствие профиля
		// лишает бронирование только денормализованного имени
		uc.logger.Warn("CreateReservation: no user profile for user_id=%d, reserving without user name", req.UserID)
	default:
		uc.logger.Error("CreateReservation: failed to resolve user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to resolve user: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 6. Одиночное бронирование
	if req.Recurrence == nil {
		created, err := uc.reserveDate(ctx, req, area, calendar, nil, userName, req.Date, now)
		if err != nil {
			return nil, err
		}
		return &Response{Created: []*CreatedReservation{fromDomainReservation(created)}}, nil
	}

	// 7. Серия: раскрываем правило повторения в список дат
	rule, err := buildRecurrenceRule(req.Recurrence)
	if err != nil {
		uc.logger.Warn("CreateReservation: invalid recurrence rule: %v", err)
		return nil, err
	}

	dates, err := rule.Expand(req.Date)
	if err != nil {
		if errors.Is(err, domain.ErrRecurrenceTooLong) {
			uc.logger.Warn("CreateReservation: recurrence expands to more than %d dates", domain.MaxRecurrenceDates)
			return nil, ErrRecurrenceTooLong
		}
		uc.logger.Warn("CreateReservation: failed to expand recurrence: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(dates) == 0 {
		uc.logger.Warn("CreateReservation: recurrence rule expands to no dates")
		return nil, fmt.Errorf("%w: recurrence rule produces no dates", ErrInvalidInput)
	}

	// 8. Бронируем каждую дату в отдельной транзакции: занятые даты
	// пропускаются, серия создаётся частично
	seriesID := uuid.New()
	resp := &Response{SeriesID: &seriesID}

	for _, date := range dates {
		created, err := uc.reserveDate(ctx, req, area, calendar, &seriesID, userName, date, now)
		if err != nil {
			if reason, ok := rejectReasonOf(err); ok {
				uc.logger.Info("CreateReservation: series date %s skipped: %s", date, reason)
				resp.Skipped = append(resp.Skipped, SkippedDate{Date: date, Reason: reason})
				continue
			}
			return nil, err
		}
		resp.Created = append(resp.Created, fromDomainReservation(created))
	}

	if len(resp.Created) == 0 {
		// Ответ с повердатными причинами отказа возвращается вместе с ошибкой:
		// вызывающий слой показывает их в теле 409
		uc.logger.Warn("CreateReservation: all %d dates of the series were rejected", len(dates))
		return resp, ErrAllDatesRejected
	}

	uc.logger.Info("CreateReservation: series %s created, %d reserved, %d skipped",
		seriesID, len(resp.Created), len(resp.Skipped))
	return resp, nil
}

// reserveDate проверяет конфликты и создаёт бронирование на одну дату
// в сериализуемой транзакции
func (uc *UseCase) reserveDate(
	ctx context.Context,
	req *Request,
	area *domain.Area,
	calendar *domain.OfficeCalendar,
	seriesID *uuid.UUID,
	userName *string,
	date types.CalendarDate,
	now time.Time,
) (*domain.Reservation, error) {
	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Снимок активных бронирований на (область, дата) с блокировкой FOR UPDATE
		existing, err := uc.reservationRepo.GetActiveByAreaAndDate(txCtx, area.ID, date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations for area=%d date=%s: %v",
				area.ID, date, err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		checkReq := &domain.ReservationRequest{
			Area:      area,
			Date:      date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Seats:     req.Seats,
		}

		decision := domain.CheckReservation(checkReq, calendar, existing, now)
		if !decision.Accepted {
			uc.logger.Warn("CreateReservation: rejected for area=%d date=%s: %s",
				area.ID, date, decision.Reason)
			return mapRejectReason(decision.Reason)
		}

		reservation := &domain.Reservation{
			UserID:    req.UserID,
			AreaID:    area.ID,
			SeriesID:  seriesID,
			Date:      date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Seats:     area.SeatsRequired(req.Seats),
			Status:    domain.StatusConfirmed,
			// Денормализация для истории
			AreaName: area.Name,
			UserName: userName,
			Notes:    req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: reservation id=%d created for area=%d date=%s",
		result.ID, area.ID, date)
	return result, nil
}

// rejectReasonOf возвращает причину отказа, если ошибка - отказ детектора конфликтов
func rejectReasonOf(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrTimeConflict):
		return string(domain.ReasonTimeOverlap), true
	case errors.Is(err, ErrCapacityExceeded):
		return string(domain.ReasonCapacityExceeded), true
	case errors.Is(err, ErrDateFullyBooked):
		return string(domain.ReasonDateFullyBooked), true
	case errors.Is(err, ErrOutsideOfficeHours):
		return string(domain.ReasonOutsideOfficeHours), true
	case errors.Is(err, ErrNonOfficeDay):
		return string(domain.ReasonNonOfficeDay), true
	case errors.Is(err, ErrPastDateTime):
		return string(domain.ReasonPastDateTime), true
	default:
		return "", false
	}
}

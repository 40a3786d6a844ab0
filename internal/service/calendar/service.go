package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	calendarRepo "github.com/m04kA/CWS-ReservationService/internal/infra/storage/calendar"
	"github.com/m04kA/CWS-ReservationService/internal/service/calendar/models"
)

// Service сервис календаря офиса
type Service struct {
	calendarRepo CalendarRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(calendarRepo CalendarRepository, logger Logger) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// Get возвращает текущий календарь офиса.
// Если календарь еще не настроен, возвращается календарь по умолчанию
// (все дни рабочие, 08:00-20:00).
func (s *Service) Get(ctx context.Context) (*models.CalendarResponse, error) {
	cal, err := s.calendarRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Info("Get: calendar is not configured, using default")
			return models.FromDomainCalendar(domain.DefaultOfficeCalendar()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCalendar(cal), nil
}

// GetDomain возвращает доменную модель календаря для проверок конфликтов
func (s *Service) GetDomain(ctx context.Context) (*domain.OfficeCalendar, error) {
	cal, err := s.calendarRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			return domain.DefaultOfficeCalendar(), nil
		}
		s.logger.Error("GetDomain: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetDomain - repository error: %v", ErrInternal, err)
	}

	return cal, nil
}

// Update обновляет календарь офиса
func (s *Service) Update(ctx context.Context, req *models.UpdateCalendarRequest) (*models.CalendarResponse, error) {
	s.logger.Info("Update: updating office calendar")

	cal, err := req.ToDomainCalendar()
	if err != nil {
		s.logger.Warn("Update: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := cal.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.calendarRepo.Upsert(ctx, cal)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: office calendar successfully updated")
	return models.FromDomainCalendar(updated), nil
}

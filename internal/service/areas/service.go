package areas

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	areaRepo "github.com/m04kA/CWS-ReservationService/internal/infra/storage/area"
	"github.com/m04kA/CWS-ReservationService/internal/service/areas/models"
)

// Service сервис администрирования областей бронирования
type Service struct {
	areaRepo AreaRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса областей
func NewService(areaRepo AreaRepository, logger Logger) *Service {
	return &Service{
		areaRepo: areaRepo,
		logger:   logger,
	}
}

// Create создает новую область
func (s *Service) Create(ctx context.Context, req *models.CreateAreaRequest) (*models.AreaResponse, error) {
	s.logger.Info("Create: creating area name=%q capacity=%d", req.Name, req.Capacity)

	if err := validateAreaRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.areaRepo.Create(ctx, req.ToDomainArea())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created area id=%d", created.ID)
	return models.FromDomainArea(created), nil
}

// GetByID получает область по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AreaResponse, error) {
	a, err := s.areaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, areaRepo.ErrAreaNotFound) {
			s.logger.Warn("GetByID: area id=%d not found", id)
			return nil, ErrAreaNotFound
		}
		s.logger.Error("GetByID: repository error for area id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainArea(a), nil
}

// GetAll получает все области
func (s *Service) GetAll(ctx context.Context) (*models.AreaListResponse, error) {
	areas, err := s.areaRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: successfully fetched %d areas", len(areas))
	return models.FromDomainAreaList(areas), nil
}

// Update обновляет область.
// Изменение вместимости не инвалидирует существующие бронирования -
// новая вместимость учитывается только будущими проверками конфликтов.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAreaRequest) (*models.AreaResponse, error) {
	s.logger.Info("Update: updating area id=%d", id)

	if err := validateAreaRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for area id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.areaRepo.Update(ctx, id, req.ToDomainArea())
	if err != nil {
		if errors.Is(err, areaRepo.ErrAreaNotFound) {
			s.logger.Warn("Update: area id=%d not found", id)
			return nil, ErrAreaNotFound
		}
		s.logger.Error("Update: repository error for area id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated area id=%d", id)
	return models.FromDomainArea(updated), nil
}

// Delete удаляет область
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting area id=%d", id)

	if err := s.areaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, areaRepo.ErrAreaNotFound) {
			s.logger.Warn("Delete: area id=%d not found", id)
			return ErrAreaNotFound
		}
		s.logger.Error("Delete: repository error for area id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted area id=%d", id)
	return nil
}

// validateAreaRequest валидирует входные данные области
func validateAreaRequest(req *models.CreateAreaRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Capacity < domain.MinAreaCapacity || req.Capacity > domain.MaxAreaCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinAreaCapacity, domain.MaxAreaCapacity)
	}
	return nil
}

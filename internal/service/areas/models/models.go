package models

import (
	"time"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
)

// Request модели

// CreateAreaRequest запрос на создание области
type CreateAreaRequest struct {
	Name                 string `json:"name"`
	Capacity             int    `json:"capacity"`
	IsMeetingRoom        bool   `json:"isMeetingRoom"`
	IsFullDayReservation bool   `json:"isFullDayReservation"`
}

// ToDomainArea конвертирует запрос в domain-область
func (r *CreateAreaRequest) ToDomainArea() *domain.Area {
	return &domain.Area{
		Name:                 r.Name,
		Capacity:             r.Capacity,
		IsMeetingRoom:        r.IsMeetingRoom,
		IsFullDayReservation: r.IsFullDayReservation,
	}
}

// UpdateAreaRequest запрос на обновление области
type UpdateAreaRequest = CreateAreaRequest

// Response модели

// AreaResponse область в ответе сервиса
type AreaResponse struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Capacity             int       `json:"capacity"`
	ResourceKind         string    `json:"resourceKind"`
	IsMeetingRoom        bool      `json:"isMeetingRoom"`
	IsFullDayReservation bool      `json:"isFullDayReservation"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// AreaListResponse список областей
type AreaListResponse struct {
	Areas []*AreaResponse `json:"areas"`
	Total int             `json:"total"`
}

// FromDomainArea конвертирует domain-область в ответ сервиса
func FromDomainArea(a *domain.Area) *AreaResponse {
	return &AreaResponse{
		ID:                   a.ID,
		Name:                 a.Name,
		Capacity:             a.Capacity,
		ResourceKind:         string(a.Kind()),
		IsMeetingRoom:        a.IsMeetingRoom,
		IsFullDayReservation: a.IsFullDayReservation,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

// FromDomainAreaList конвертирует список domain-областей
func FromDomainAreaList(areas []*domain.Area) *AreaListResponse {
	result := make([]*AreaResponse, len(areas))
	for i, a := range areas {
		result[i] = FromDomainArea(a)
	}
	return &AreaListResponse{
		Areas: result,
		Total: len(result),
	}
}

package models

import (
	"errors"
	"time"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetAreaReservationsRequest запрос на получение бронирований области
type GetAreaReservationsRequest struct {
	AreaID          int64
	StartDate       *types.CalendarDate
	EndDate         *types.CalendarDate
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *GetAreaReservationsRequest) ToDomainFilter() (domain.AreaReservationsFilter, error) {
	filter := domain.AreaReservationsFilter{
		AreaID:          r.AreaID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return domain.AreaReservationsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse бронирование в ответе сервиса
type ReservationResponse struct {
	ID        int64              `json:"id"`
	SeriesID  *string            `json:"seriesId,omitempty"`
	UserID    int64              `json:"userId"`
	AreaID    int64              `json:"areaId"`
	AreaName  string             `json:"areaName"`
	UserName  *string            `json:"userName,omitempty"`
	Date      types.CalendarDate `json:"date"`
	StartTime *string            `json:"startTime,omitempty"`
	EndTime   *string            `json:"endTime,omitempty"`
	FullDay   bool               `json:"fullDay"`
	Seats     int                `json:"seats"`
	Status    string             `json:"status"`
	Notes     *string            `json:"notes,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует domain-бронирование в ответ сервиса
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:                 res.ID,
		UserID:             res.UserID,
		AreaID:             res.AreaID,
		AreaName:           res.AreaName,
		UserName:           res.UserName,
		Date:               res.Date,
		FullDay:            res.IsFullDay(),
		Seats:              res.Seats,
		Status:             string(res.Status),
		Notes:              res.Notes,
		CancellationReason: res.CancellationReason,
		CancelledAt:        res.CancelledAt,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}

	if res.SeriesID != nil {
		s := res.SeriesID.String()
		resp.SeriesID = &s
	}
	if !res.StartTime.IsZero() {
		start := res.StartTime.String()
		end := res.EndTime.String()
		resp.StartTime = &start
		resp.EndTime = &end
	}

	return resp
}

// FromDomainReservationList конвертирует список domain-бронирований
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, len(reservations))
	for i, res := range reservations {
		result[i] = FromDomainReservation(res)
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}

// ToDomainReservationStatus валидирует и конвертирует строковый статус
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	switch status {
	case domain.StatusActive, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

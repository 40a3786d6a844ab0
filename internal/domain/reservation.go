package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation - единица, защищаемая от конфликтов. После подтверждения
// запись append-only: единственная допустимая мутация - переход в cancelled.
type Reservation struct {
	ID     int64
	UserID int64
	AreaID int64

	// SeriesID группирует бронирования, созданные одной повторяющейся серией
	SeriesID *uuid.UUID

	Date types.CalendarDate

	// StartTime/EndTime - полузамкнутый интервал [start, end).
	// Нулевые значения - сентинел "весь офисный день" (full-day области).
	StartTime types.TimeString
	EndTime   types.TimeString

	Seats  int
	Status ReservationStatus

	// Денормализация для истории
	AreaName string
	UserName *string
	Notes    *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование учитывается при проверке
// конфликтов и вместимости
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive || r.Status == StatusConfirmed
}

// IsFullDay возвращает true, если бронирование занимает весь офисный день
func (r *Reservation) IsFullDay() bool {
	return r.StartTime.IsZero()
}

// CanBeCancelled возвращает true, если бронирование может перейти в cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusActive || r.Status == StatusConfirmed
}

// AreaReservationsFilter фильтр для получения бронирований области
type AreaReservationsFilter struct {
	AreaID          int64               // Обязательный параметр
	StartDate       *types.CalendarDate // Начало периода (опционально)
	EndDate         *types.CalendarDate // Конец периода (опционально)
	Status          *ReservationStatus  // Фильтр по статусу (опционально)
	IncludeInactive bool                // Включать ли отменённые и завершённые
}

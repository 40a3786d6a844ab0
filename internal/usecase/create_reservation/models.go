package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// Recurrence правило повторения для серии бронирований
type Recurrence struct {
	Type     string              // daily / weekly / monthly
	Interval int                 // Шаг повторения (по умолчанию 1)
	EndDate  types.CalendarDate  // Последняя дата серии (включительно)
	Weekdays []string            // Дни недели для weekly-правил ("monday", ...)
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID int64              // ID пользователя
	AreaID int64              // ID области
	Date   types.CalendarDate // Дата бронирования

	// Нулевые StartTime/EndTime - заявка на весь офисный день (full-day области)
	StartTime types.TimeString
	EndTime   types.TimeString

	Seats int     // Количество мест (для seat pool, по умолчанию 1)
	Notes *string // Дополнительные заметки (опционально)

	Recurrence *Recurrence // Правило повторения (опционально)
}

// CreatedReservation созданное бронирование в составе ответа
type CreatedReservation struct {
	ID        int64
	UserID    int64
	AreaID    int64
	SeriesID  *uuid.UUID
	Date      types.CalendarDate
	StartTime types.TimeString
	EndTime   types.TimeString
	Seats     int
	Status    string

	AreaName string
	UserName *string
	Notes    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SkippedDate дата серии, отклонённая проверкой конфликтов
type SkippedDate struct {
	Date   types.CalendarDate
	Reason string
}

// Response модель ответа на создание бронирования.
// Для одиночного запроса Created содержит ровно одно бронирование.
// Для серии допускается частичный успех: занятые даты попадают в Skipped.
type Response struct {
	SeriesID *uuid.UUID
	Created  []*CreatedReservation
	Skipped  []SkippedDate
}

func fromDomainReservation(res *domain.Reservation) *CreatedReservation {
	return &CreatedReservation{
		ID:        res.ID,
		UserID:    res.UserID,
		AreaID:    res.AreaID,
		SeriesID:  res.SeriesID,
		Date:      res.Date,
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
		Seats:     res.Seats,
		Status:    string(res.Status),
		AreaName:  res.AreaName,
		UserName:  res.UserName,
		Notes:     res.Notes,
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}
}

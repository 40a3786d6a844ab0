package domain

import "time"

// ResourceKind определяет, как бронирования расходуют вместимость области
type ResourceKind string

const (
	// SeatPool - общая зона со взаимозаменяемыми местами, бронирование
	// занимает 1..capacity мест на дату
	SeatPool ResourceKind = "seat_pool"
	// WholeUnit - переговорная, бронируется целиком на интервал времени
	WholeUnit ResourceKind = "whole_unit"
	// FullDay - область, бронируемая целиком на офисный день, без
	// деления по времени суток
	FullDay ResourceKind = "full_day"
)

// Area бронируемый ресурс коворкинга
type Area struct {
	ID       int64
	Name     string
	Capacity int

	// IsMeetingRoom - бронируется целиком на интервал времени (WholeUnit)
	IsMeetingRoom bool
	// IsFullDayReservation - бронируется целиком на весь офисный день (FullDay)
	IsFullDayReservation bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Kind возвращает вид ресурса, выведенный из флагов области.
// FullDay имеет приоритет над флагом переговорной.
func (a *Area) Kind() ResourceKind {
	switch {
	case a.IsFullDayReservation:
		return FullDay
	case a.IsMeetingRoom:
		return WholeUnit
	default:
		return SeatPool
	}
}

// SeatsRequired возвращает, сколько мест фактически занимает заявка с
// указанным количеством мест: всю вместимость для переговорных и full-day
// областей (такое бронирование всегда забирает дату целиком), запрошенное
// количество для seat pool.
func (a *Area) SeatsRequired(requestedSeats int) int {
	switch a.Kind() {
	case WholeUnit, FullDay:
		return a.Capacity
	default:
		return requestedSeats
	}
}

// BookedByInterval возвращает true, если бронирования области несут
// интервал времени [start, end)
func (a *Area) BookedByInterval() bool {
	return a.Kind() != FullDay
}

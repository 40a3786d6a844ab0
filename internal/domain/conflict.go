package domain

import (
	"time"

	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// RejectReason структурированная причина отказа в бронировании.
// Вызывающие слои (API, UI) переводят её в пользовательское сообщение.
type RejectReason string

const (
	ReasonTimeOverlap        RejectReason = "time_overlap"
	ReasonCapacityExceeded   RejectReason = "capacity_exceeded"
	ReasonDateFullyBooked    RejectReason = "date_fully_booked"
	ReasonOutsideOfficeHours RejectReason = "outside_office_hours"
	ReasonNonOfficeDay       RejectReason = "non_office_day"
	ReasonPastDateTime       RejectReason = "past_date_time"
)

// ReservationRequest запрос на бронирование, проверяемый детектором конфликтов
type ReservationRequest struct {
	Area *Area
	Date types.CalendarDate

	// Нулевые StartTime/EndTime - заявка на весь офисный день
	StartTime types.TimeString
	EndTime   types.TimeString

	Seats int
}

// IsFullDay возвращает true, если запрос на весь офисный день
func (r *ReservationRequest) IsFullDay() bool {
	return r.StartTime.IsZero()
}

// Decision результат проверки запроса детектором конфликтов
type Decision struct {
	Accepted  bool
	Reason    RejectReason
	Conflicts []*Reservation
}

func accepted() Decision {
	return Decision{Accepted: true}
}

func rejected(reason RejectReason, conflicts []*Reservation) Decision {
	return Decision{Reason: reason, Conflicts: conflicts}
}

// Overlaps - единственный примитив пересечения интервалов: два полузамкнутых
// интервала [aStart, aEnd) и [bStart, bEnd) пересекаются тогда и только
// тогда, когда aStart < bEnd И bStart < aEnd. Граничащие интервалы
// (конец одного равен началу другого) НЕ пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// FindConflicts возвращает все активные бронирования, интервал которых
// пересекается с [start, end). Full-day бронирование в наборе existing
// занимает весь день и конфликтует с любым интервалом.
func FindConflicts(start, end types.TimeString, existing []*Reservation) []*Reservation {
	conflicts := make([]*Reservation, 0)

	for _, res := range existing {
		if !res.IsActive() {
			continue
		}
		if res.IsFullDay() || Overlaps(start, end, res.StartTime, res.EndTime) {
			conflicts = append(conflicts, res)
		}
	}

	return conflicts
}

// SeatsTaken возвращает суммарное количество мест, занятых активными
// бронированиями на дату
func SeatsTaken(existing []*Reservation) int {
	total := 0
	for _, res := range existing {
		if res.IsActive() {
			total += res.Seats
		}
	}
	return total
}

// IsDateFullyBooked определяет, полностью ли занята дата для области:
//   - FullDay: любое активное бронирование занимает весь день;
//   - WholeUnit: каждый 30-минутный интервал офисных часов покрыт
//     объединением активных бронирований;
//   - SeatPool: суммарно занятые места достигли вместимости.
func IsDateFullyBooked(area *Area, calendar *OfficeCalendar, existing []*Reservation) bool {
	switch area.Kind() {
	case FullDay:
		for _, res := range existing {
			if res.IsActive() {
				return true
			}
		}
		return false

	case WholeUnit:
		return officeHoursCovered(calendar, existing)

	default:
		return SeatsTaken(existing) >= area.Capacity
	}
}

// officeHoursCovered проверяет, что каждый тик офисных часов занят
func officeHoursCovered(calendar *OfficeCalendar, existing []*Reservation) bool {
	tick := calendar.Open()
	closeTime := calendar.Close()

	for tick.IsBefore(closeTime) {
		tickEnd, err := tick.AddMinutes(SlotStepMinutes)
		if err != nil {
			// Рабочие часы упираются в полночь - оставшийся хвост считаем непокрытым
			return false
		}

		if len(FindConflicts(tick, tickEnd, existing)) == 0 {
			return false
		}

		if !tickEnd.IsBefore(closeTime) {
			break
		}
		tick = tickEnd
	}

	return true
}

// CheckReservation - основной предикат валидации и проверки конфликтов.
// Чистая функция от (запрос, календарь, снимок активных бронирований на
// (область, дата), текущее время); никакого скрытого состояния.
//
// Порядок проверок: офисный день -> офисные часы -> прошлое ->
// занятость/конфликты.
func CheckReservation(req *ReservationRequest, calendar *OfficeCalendar, existing []*Reservation, now time.Time) Decision {
	if !calendar.IsOfficeDay(req.Date) {
		return rejected(ReasonNonOfficeDay, nil)
	}

	today := types.CalendarDateOf(now)
	nowTime := types.NewTimeString(now.UTC())

	if req.IsFullDay() {
		if req.Date.Before(today) {
			return rejected(ReasonPastDateTime, nil)
		}
		return checkOccupancy(req, existing)
	}

	// Интервальная заявка: начало в офисных часах, конец не позже закрытия
	if !calendar.IsOfficeHour(req.StartTime) {
		return rejected(ReasonOutsideOfficeHours, nil)
	}
	if !req.StartTime.IsBefore(req.EndTime) || calendar.Close().IsBefore(req.EndTime) {
		return rejected(ReasonOutsideOfficeHours, nil)
	}

	// Бронирование в прошлом запрещено (строго раньше "сейчас")
	if req.Date.Before(today) || (req.Date.Equal(today) && req.StartTime.IsBefore(nowTime)) {
		return rejected(ReasonPastDateTime, nil)
	}

	return checkOccupancy(req, existing)
}

// checkOccupancy проверяет занятость по виду ресурса
func checkOccupancy(req *ReservationRequest, existing []*Reservation) Decision {
	area := req.Area

	switch area.Kind() {
	case FullDay:
		// Full-day области одноместны в пределах даты: любое активное
		// бронирование насыщает дату независимо от количества мест
		for _, res := range existing {
			if res.IsActive() {
				return rejected(ReasonDateFullyBooked, []*Reservation{res})
			}
		}
		return accepted()

	case WholeUnit:
		if conflicts := FindConflicts(req.StartTime, req.EndTime, existing); len(conflicts) > 0 {
			return rejected(ReasonTimeOverlap, conflicts)
		}
		return accepted()

	default:
		// Учёт мест ведётся по (область, дата): сумма мест активных
		// бронирований не должна превысить вместимость
		required := area.SeatsRequired(req.Seats)
		if required < 1 || SeatsTaken(existing)+required > area.Capacity {
			return rejected(ReasonCapacityExceeded, nil)
		}
		return accepted()
	}
}

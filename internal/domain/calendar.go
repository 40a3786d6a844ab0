package domain

import (
	"errors"
	"time"

	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// ErrNoOfficeDays возвращается для календаря без единого офисного дня.
// Это ошибка конфигурации, а не ситуация "нет доступности".
var ErrNoOfficeDays = errors.New("office calendar has no active weekdays")

// OfficeCalendar задаёт, какие дни недели являются офисными, и единое
// окно открытия/закрытия, действующее во все офисные дни.
//
// Все методы-предикаты допускают nil-получателя: отсутствующий календарь
// трактуется разрешительно (все дни недели активны, часы по умолчанию),
// чтобы пустая конфигурация никогда не блокировала бронирования.
type OfficeCalendar struct {
	// Weekdays индексируется time.Weekday (0 = Sunday)
	Weekdays [7]bool

	OpenTime  types.TimeString
	CloseTime types.TimeString

	UpdatedAt time.Time
}

// DefaultOfficeCalendar возвращает разрешительный календарь по умолчанию:
// все дни недели активны, офисные часы по умолчанию.
func DefaultOfficeCalendar() *OfficeCalendar {
	return &OfficeCalendar{
		Weekdays:  [7]bool{true, true, true, true, true, true, true},
		OpenTime:  types.TimeString(DefaultOpenTime),
		CloseTime: types.TimeString(DefaultCloseTime),
	}
}

// Validate проверяет инвариант конфигурации: открытие строго раньше закрытия
// и хотя бы один офисный день.
func (c *OfficeCalendar) Validate() error {
	if err := c.OpenTime.Validate(); err != nil {
		return err
	}
	if err := c.CloseTime.Validate(); err != nil {
		return err
	}
	if !c.OpenTime.IsBefore(c.CloseTime) {
		return errors.New("office calendar open time must be before close time")
	}
	if !c.hasOfficeDays() {
		return ErrNoOfficeDays
	}
	return nil
}

func (c *OfficeCalendar) hasOfficeDays() bool {
	for _, active := range c.Weekdays {
		if active {
			return true
		}
	}
	return false
}

// Open возвращает время открытия (с учётом permissive fallback)
func (c *OfficeCalendar) Open() types.TimeString {
	if c == nil {
		return types.TimeString(DefaultOpenTime)
	}
	return c.OpenTime
}

// Close возвращает время закрытия (с учётом permissive fallback)
func (c *OfficeCalendar) Close() types.TimeString {
	if c == nil {
		return types.TimeString(DefaultCloseTime)
	}
	return c.CloseTime
}

// IsOfficeDay возвращает true, если день недели даты отмечен активным.
// Для nil-календаря активны все дни недели.
func (c *OfficeCalendar) IsOfficeDay(date types.CalendarDate) bool {
	if c == nil {
		return true
	}
	return c.Weekdays[date.Weekday()]
}

// IsOfficeHour возвращает true тогда и только тогда, когда open <= t < close
// (полузамкнутый интервал: сама минута закрытия не является временем начала)
func (c *OfficeCalendar) IsOfficeHour(t types.TimeString) bool {
	return !t.IsBefore(c.Open()) && t.IsBefore(c.Close())
}

// IsWithinOfficeHours возвращает true, если date - офисный день и t
// попадает в офисные часы
func (c *OfficeCalendar) IsWithinOfficeHours(date types.CalendarDate, t types.TimeString) bool {
	return c.IsOfficeDay(date) && c.IsOfficeHour(t)
}

// NextOfficeDay возвращает наименьшую дату строго после from, являющуюся
// офисным днём. Для календаря без активных дней возвращает ErrNoOfficeDays
// вместо зацикливания.
func (c *OfficeCalendar) NextOfficeDay(from types.CalendarDate) (types.CalendarDate, error) {
	if c != nil && !c.hasOfficeDays() {
		return types.CalendarDate{}, ErrNoOfficeDays
	}

	d := from
	for i := 0; i < 7; i++ {
		d = d.AddDays(1)
		if c.IsOfficeDay(d) {
			return d, nil
		}
	}
	return types.CalendarDate{}, ErrNoOfficeDays
}

// MinBookableDate возвращает сегодняшнюю дату, если сегодня офисный день и
// время открытия ещё не наступило; иначе - следующий офисный день.
func (c *OfficeCalendar) MinBookableDate(now time.Time) (types.CalendarDate, error) {
	today := types.CalendarDateOf(now)
	timeOfDay := types.NewTimeString(now.UTC())

	if c.IsOfficeDay(today) && timeOfDay.IsBefore(c.Open()) {
		return today, nil
	}
	return c.NextOfficeDay(today)
}

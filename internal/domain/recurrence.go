package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// RecurrenceType тип правила повторения
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// ErrRecurrenceTooLong возвращается, когда правило порождает больше
// MaxRecurrenceDates дат - это ошибка конфигурации правила
var ErrRecurrenceTooLong = errors.New("recurrence rule expands to too many dates")

// ErrInvalidRecurrenceType возвращается при неизвестном типе правила
var ErrInvalidRecurrenceType = errors.New("invalid recurrence type")

// RecurrenceRule правило разворачивания повторяющейся серии бронирований.
// Правило с датой окончания раньше даты начала разворачивается в пустой
// набор (это не ошибка: вызывающему сообщается, что дат ноль).
type RecurrenceRule struct {
	Type RecurrenceType

	// Interval - повтор каждые N единиц (дней/недель/месяцев); значения
	// меньше 1 нормализуются к 1
	Interval int

	// EndDate - последняя дата серии (включительно)
	EndDate types.CalendarDate

	// Weekdays - набор дней недели для weekly-правил
	Weekdays []time.Weekday
}

// ParseWeekday преобразует название дня недели в time.Weekday
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return 0, fmt.Errorf("invalid weekday name %q", name)
	}
}

func (r *RecurrenceRule) interval() int {
	if r.Interval < 1 {
		return 1
	}
	return r.Interval
}

func (r *RecurrenceRule) hasWeekday(d time.Weekday) bool {
	for _, w := range r.Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// Expand разворачивает правило в конкретные календарные даты серии,
// начиная с startDate, по EndDate включительно.
//
// Принадлежность дат офисному календарю здесь НЕ проверяется: каждая
// выданная дата независимо проходит валидацию и проверку конфликтов
// на следующем шаге. Исключение - weekly-правила, где набор дней недели
// является частью самого правила.
func (r *RecurrenceRule) Expand(startDate types.CalendarDate) ([]types.CalendarDate, error) {
	if r.EndDate.Before(startDate) {
		return []types.CalendarDate{}, nil
	}

	switch r.Type {
	case RecurrenceDaily:
		return r.expandDaily(startDate)
	case RecurrenceWeekly:
		return r.expandWeekly(startDate)
	case RecurrenceMonthly:
		return r.expandMonthly(startDate)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRecurrenceType, r.Type)
	}
}

func (r *RecurrenceRule) expandDaily(startDate types.CalendarDate) ([]types.CalendarDate, error) {
	dates := make([]types.CalendarDate, 0)

	for d := startDate; !d.After(r.EndDate); d = d.AddDays(r.interval()) {
		if len(dates) >= MaxRecurrenceDates {
			return nil, ErrRecurrenceTooLong
		}
		dates = append(dates, d)
	}

	return dates, nil
}

// expandWeekly идёт по дням от startDate до EndDate и выдаёт даты, чей день
// недели входит в набор правила. Interval пропускает целые недели: неделя
// учитывается, если её расстояние в неделях от недели startDate кратно
// интервалу (недели начинаются с понедельника).
func (r *RecurrenceRule) expandWeekly(startDate types.CalendarDate) ([]types.CalendarDate, error) {
	dates := make([]types.CalendarDate, 0)
	weekAnchor := startOfWeek(startDate)

	for d := startDate; !d.After(r.EndDate); d = d.AddDays(1) {
		if !r.hasWeekday(d.Weekday()) {
			continue
		}

		weeksFromStart := startOfWeek(d).DaysSince(weekAnchor) / 7
		if weeksFromStart%r.interval() != 0 {
			continue
		}

		if len(dates) >= MaxRecurrenceDates {
			return nil, ErrRecurrenceTooLong
		}
		dates = append(dates, d)
	}

	return dates, nil
}

func (r *RecurrenceRule) expandMonthly(startDate types.CalendarDate) ([]types.CalendarDate, error) {
	dates := make([]types.CalendarDate, 0)

	// День месяца сохраняется от startDate; в коротких месяцах прижимается
	// к последнему дню (31-е -> 28/29 февраля), без переноса на следующий месяц
	for i := 0; ; i++ {
		d := startDate.AddMonths(i * r.interval())
		if d.After(r.EndDate) {
			break
		}

		if len(dates) >= MaxRecurrenceDates {
			return nil, ErrRecurrenceTooLong
		}
		dates = append(dates, d)
	}

	return dates, nil
}

// startOfWeek возвращает понедельник недели, содержащей дату
func startOfWeek(d types.CalendarDate) types.CalendarDate {
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return d.AddDays(-offset)
}

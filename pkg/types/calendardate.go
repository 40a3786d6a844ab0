package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CalendarDate календарная дата без времени суток и таймзоны.
// Единственный канонический тип даты в сервисе: любые входные timestamp
// нормализуются к календарной дате по UTC ровно один раз, на границе системы.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

const calendarDateFormat = "2006-01-02"

// NewCalendarDate создает дату из компонентов
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// CalendarDateOf извлекает календарную дату из time.Time по UTC
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.UTC().Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseCalendarDate парсит дату из строки.
// Принимает YYYY-MM-DD либо полный RFC3339 timestamp;
// timestamp нормализуется к календарной дате по UTC.
func ParseCalendarDate(s string) (CalendarDate, error) {
	if t, err := time.Parse(calendarDateFormat, s); err == nil {
		y, m, d := t.Date()
		return CalendarDate{Year: y, Month: m, Day: d}, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", s)
	}
	return CalendarDateOf(t), nil
}

// Time возвращает полночь этой даты в UTC
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday возвращает день недели
func (d CalendarDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsZero возвращает true для нулевого значения
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// AddDays возвращает дату, сдвинутую на n дней
func (d CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateOf(d.Time().AddDate(0, 0, n))
}

// AddMonths возвращает дату, сдвинутую на n календарных месяцев.
// День месяца сохраняется; при переполнении более короткого месяца
// прижимается к его последнему дню (31 января + 1 месяц = 28/29 февраля).
func (d CalendarDate) AddMonths(n int) CalendarDate {
	firstOfTarget := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := d.Day
	if day > lastDay {
		day = lastDay
	}

	y, m, _ := firstOfTarget.Date()
	return CalendarDate{Year: y, Month: m, Day: day}
}

// DaysSince возвращает количество дней между датами (d - other)
func (d CalendarDate) DaysSince(other CalendarDate) int {
	return int(d.Time().Sub(other.Time()).Hours() / 24)
}

// Before возвращает true, если d строго раньше other
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time().Before(other.Time())
}

// After возвращает true, если d строго позже other
func (d CalendarDate) After(other CalendarDate) bool {
	return d.Time().After(other.Time())
}

// Equal возвращает true, если даты совпадают
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d == other
}

// String возвращает дату в формате YYYY-MM-DD
func (d CalendarDate) String() string {
	return d.Time().Format(calendarDateFormat)
}

// MarshalJSON сериализует дату как "YYYY-MM-DD"
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON парсит дату из "YYYY-MM-DD" или RFC3339
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date JSON: %s", s)
	}

	parsed, err := ParseCalendarDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer: дата хранится как DATE (полночь UTC)
func (d CalendarDate) Value() (driver.Value, error) {
	return d.Time(), nil
}

// Scan реализует sql.Scanner для чтения из колонки DATE
func (d *CalendarDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = CalendarDateOf(v)
		return nil
	case string:
		parsed, err := ParseCalendarDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseCalendarDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CalendarDate", src)
	}
}

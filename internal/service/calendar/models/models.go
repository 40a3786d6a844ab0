package models

import (
	"fmt"
	"time"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// weekdayNames имена дней недели в порядке time.Weekday
var weekdayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// UpdateCalendarRequest модель запроса на обновление календаря офиса
type UpdateCalendarRequest struct {
	OfficeDays []string `json:"office_days"`
	OpenTime   string   `json:"open_time"`
	CloseTime  string   `json:"close_time"`
}

// ToDomainCalendar преобразует запрос в доменную модель календаря
func (r *UpdateCalendarRequest) ToDomainCalendar() (*domain.OfficeCalendar, error) {
	cal := &domain.OfficeCalendar{}

	for _, name := range r.OfficeDays {
		wd, err := domain.ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		cal.Weekdays[wd] = true
	}

	openTime, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("invalid open_time: %w", err)
	}
	closeTime, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("invalid close_time: %w", err)
	}

	cal.OpenTime = openTime
	cal.CloseTime = closeTime

	return cal, nil
}

// CalendarResponse модель ответа с календарем офиса
type CalendarResponse struct {
	OfficeDays []string   `json:"office_days"`
	OpenTime   string     `json:"open_time"`
	CloseTime  string     `json:"close_time"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// FromDomainCalendar преобразует доменную модель в модель ответа
func FromDomainCalendar(cal *domain.OfficeCalendar) *CalendarResponse {
	days := make([]string, 0, 7)
	// В ответе дни идут с понедельника
	for i := 1; i <= 7; i++ {
		wd := time.Weekday(i % 7)
		if cal.Weekdays[wd] {
			days = append(days, weekdayNames[wd])
		}
	}

	resp := &CalendarResponse{
		OfficeDays: days,
		OpenTime:   string(cal.Open()),
		CloseTime:  string(cal.Close()),
	}
	if !cal.UpdatedAt.IsZero() {
		resp.UpdatedAt = &cal.UpdatedAt
	}

	return resp
}

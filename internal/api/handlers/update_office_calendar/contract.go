package update_office_calendar

import (
	"context"

	"github.com/m04kA/CWS-ReservationService/internal/service/calendar/models"
)

type CalendarService interface {
	Update(ctx context.Context, req *models.UpdateCalendarRequest) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

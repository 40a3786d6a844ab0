package calendar

import (
	"context"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
)

// CalendarRepository интерфейс репозитория календаря офиса
type CalendarRepository interface {
	Get(ctx context.Context) (*domain.OfficeCalendar, error)
	Upsert(ctx context.Context, cal *domain.OfficeCalendar) (*domain.OfficeCalendar, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

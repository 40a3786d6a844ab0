package expand_recurrence

import (
	"context"
	"time"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetActiveByAreaAndDate(ctx context.Context, areaID int64, date types.CalendarDate) ([]*domain.Reservation, error)
}

// AreaRepository интерфейс репозитория областей
type AreaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Area, error)
}

// CalendarProvider предоставляет действующий календарь офиса
type CalendarProvider interface {
	GetDomain(ctx context.Context) (*domain.OfficeCalendar, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

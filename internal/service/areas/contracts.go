package areas

import (
	"context"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
)

// AreaRepository интерфейс репозитория областей
type AreaRepository interface {
	Create(ctx context.Context, a *domain.Area) (*domain.Area, error)
	GetByID(ctx context.Context, id int64) (*domain.Area, error)
	GetAll(ctx context.Context) ([]*domain.Area, error)
	Update(ctx context.Context, id int64, a *domain.Area) (*domain.Area, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

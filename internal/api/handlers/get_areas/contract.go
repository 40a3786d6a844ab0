package get_areas

import (
	"context"

	"github.com/m04kA/CWS-ReservationService/internal/service/areas/models"
)

type AreaService interface {
	GetAll(ctx context.Context) (*models.AreaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_area

import (
	"context"

	"github.com/m04kA/CWS-ReservationService/internal/service/areas/models"
)

type AreaService interface {
	Create(ctx context.Context, req *models.CreateAreaRequest) (*models.AreaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

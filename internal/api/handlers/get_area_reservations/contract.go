package get_area_reservations

import (
	"context"

	"github.com/m04kA/CWS-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetAreaReservations(ctx context.Context, req *models.GetAreaReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package record_actuals

import (
	"context"

	"github.com/jspark-dev/JSM-ReservationService/internal/service/bookings/models"
)

type BookingService interface {
	RecordActuals(ctx context.Context, id int64, req *models.ActualsRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

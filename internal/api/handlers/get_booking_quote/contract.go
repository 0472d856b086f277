package get_booking_quote

import (
	"context"

	"github.com/jspark-dev/JSM-ReservationService/internal/service/bookings/models"
)

type BookingService interface {
	Quote(ctx context.Context, id int64) (*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

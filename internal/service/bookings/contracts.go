package bookings

import (
	"context"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/internal/integrations/notify"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByFacilityWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdateActuals(ctx context.Context, id int64, actuals domain.ActualsUpdate) error
	Delete(ctx context.Context, id int64) error
}

// ConfigRepository интерфейс репозитория конфигурации цен
type ConfigRepository interface {
	GetByFacility(ctx context.Context, facilityCode string) (*domain.FormConfig, error)
}

// NotifyClient интерфейс клиента сервиса рассылки
type NotifyClient interface {
	SendWithGracefulDegradation(ctx context.Context, msg *notify.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package reports

import (
	"context"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByFacilityWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ConfigRepository интерфейс репозитория конфигурации цен
type ConfigRepository interface {
	GetByFacility(ctx context.Context, facilityCode string) (*domain.FormConfig, error)
}

// AgencyRepository интерфейс репозитория агентств
type AgencyRepository interface {
	GetByCode(ctx context.Context, facilityCode, code string) (*domain.Agency, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

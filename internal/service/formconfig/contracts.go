package formconfig

import (
	"context"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации цен
type ConfigRepository interface {
	GetByFacility(ctx context.Context, facilityCode string) (*domain.FormConfig, error)
	Upsert(ctx context.Context, cfg *domain.FormConfig) (*domain.FormConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

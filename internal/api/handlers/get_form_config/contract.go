package get_form_config

import (
	"context"

	"github.com/jspark-dev/JSM-ReservationService/internal/service/formconfig/models"
)

type ConfigService interface {
	Get(ctx context.Context, facilityCode string) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

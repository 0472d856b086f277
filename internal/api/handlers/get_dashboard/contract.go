package get_dashboard

import (
	"context"

	"github.com/jspark-dev/JSM-ReservationService/internal/service/reports/models"
)

type ReportsService interface {
	Dashboard(ctx context.Context, facilityCode string) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_weekly_overview

import (
	"context"

	"github.com/jspark-dev/JSM-ReservationService/internal/service/reports/models"
)

type ReportsService interface {
	WeeklyOverview(ctx context.Context, facilityCode string, offset int) (*models.WeeklyOverviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

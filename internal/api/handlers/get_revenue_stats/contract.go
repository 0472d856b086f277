package get_revenue_stats

import (
	"context"

	"github.com/jspark-dev/JSM-ReservationService/internal/service/reports/models"
)

type ReportsService interface {
	RevenueStats(ctx context.Context, facilityCode, period string, rangeMonths int) (*models.RevenueStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_category_stats

import (
	"context"

	"github.com/jspark-dev/JSM-ReservationService/internal/service/reports/models"
)

type ReportsService interface {
	CategoryStats(ctx context.Context, facilityCode string) (*models.CategoryStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

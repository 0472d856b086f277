package get_agency_report

import (
	"context"

	"github.com/jspark-dev/JSM-ReservationService/internal/service/reports/models"
)

type ReportsService interface {
	AgencyReport(ctx context.Context, facilityCode, agencyCode, month string) (*models.AgencyReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_daily_schedule

import (
	"context"

	getDailySchedule "github.com/jspark-dev/JSM-ReservationService/internal/usecase/get_daily_schedule"
)

type GetDailyScheduleUseCase interface {
	Execute(ctx context.Context, req *getDailySchedule.Request) (*getDailySchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_daily_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jspark-dev/JSM-ReservationService/internal/api/handlers"
	getDailySchedule "github.com/jspark-dev/JSM-ReservationService/internal/usecase/get_daily_schedule"
)

const (
	msgInvalidDate = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"
)

type Handler struct {
	useCase GetDailyScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDailyScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityCode}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	req := &getDailySchedule.Request{
		FacilityCode: vars["facilityCode"],
		Date:         r.URL.Query().Get("date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDailySchedule.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{code}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /facilities/{code}/schedule - Failed to build schedule: facility=%s, date=%s, error=%v",
				req.FacilityCode, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{code}/schedule - Schedule built: facility=%s, date=%s, unplaced=%d",
		req.FacilityCode, req.Date, len(result.Unplaced))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_revenue_stats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jspark-dev/JSM-ReservationService/internal/api/handlers"
	"github.com/jspark-dev/JSM-ReservationService/internal/service/reports"
)

const (
	msgInvalidPeriod = "집계 단위는 day, week, month 중 하나여야 합니다"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityCode}/stats/revenue?period=&range=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityCode := vars["facilityCode"]
	query := r.URL.Query()

	period := query.Get("period")
	if period == "" {
		period = "month"
	}

	rangeMonths := 0
	if v := query.Get("range"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /facilities/{code}/stats/revenue - Invalid range: %q", v)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		rangeMonths = parsed
	}

	result, err := h.service.RevenueStats(r.Context(), facilityCode, period, rangeMonths)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{code}/stats/revenue - Invalid period: %s", period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /facilities/{code}/stats/revenue - Failed to build stats: facility=%s, error=%v",
				facilityCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{code}/stats/revenue - Stats built: facility=%s, period=%s, buckets=%d",
		facilityCode, period, len(result.Buckets))
	handlers.RespondJSON(w, http.StatusOK, result)
}

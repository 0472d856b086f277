package get_weekly_overview

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jspark-dev/JSM-ReservationService/internal/api/handlers"
)

const (
	msgInvalidOffset = "주차 이동값이 올바르지 않습니다"
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

// Handle GET /api/v1/facilities/{facilityCode}/stats/weekly?offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityCode := vars["facilityCode"]

	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /facilities/{code}/stats/weekly - Invalid offset: %q", v)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		offset = parsed
	}

	result, err := h.service.WeeklyOverview(r.Context(), facilityCode, offset)
	if err != nil {
		h.logger.Error("GET /facilities/{code}/stats/weekly - Failed to build overview: facility=%s, error=%v",
			facilityCode, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{code}/stats/weekly - Overview built: facility=%s, week_start=%s",
		facilityCode, result.WeekStart)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_category_stats

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jspark-dev/JSM-ReservationService/internal/api/handlers"
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

// Handle GET /api/v1/facilities/{facilityCode}/stats/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityCode := vars["facilityCode"]

	result, err := h.service.CategoryStats(r.Context(), facilityCode)
	if err != nil {
		h.logger.Error("GET /facilities/{code}/stats/categories - Failed to build stats: facility=%s, error=%v",
			facilityCode, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{code}/stats/categories - Stats built: facility=%s, categories=%d",
		facilityCode, len(result.Categories))
	handlers.RespondJSON(w, http.StatusOK, result)
}

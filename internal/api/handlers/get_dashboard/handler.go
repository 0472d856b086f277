package get_dashboard

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

// Handle GET /api/v1/facilities/{facilityCode}/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityCode := vars["facilityCode"]

	result, err := h.service.Dashboard(r.Context(), facilityCode)
	if err != nil {
		h.logger.Error("GET /facilities/{code}/dashboard - Failed to build dashboard: facility=%s, error=%v",
			facilityCode, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{code}/dashboard - Dashboard built: facility=%s", facilityCode)
	handlers.RespondJSON(w, http.StatusOK, result)
}

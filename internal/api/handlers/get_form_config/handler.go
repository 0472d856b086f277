package get_form_config

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jspark-dev/JSM-ReservationService/internal/api/handlers"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityCode}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityCode := vars["facilityCode"]

	result, err := h.service.Get(r.Context(), facilityCode)
	if err != nil {
		h.logger.Error("GET /facilities/{code}/config - Failed to get config: facility=%s, error=%v",
			facilityCode, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{code}/config - Config retrieved: facility=%s", facilityCode)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package update_form_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jspark-dev/JSM-ReservationService/internal/api/handlers"
	"github.com/jspark-dev/JSM-ReservationService/internal/service/formconfig"
	"github.com/jspark-dev/JSM-ReservationService/internal/service/formconfig/models"
)

const (
	msgInvalidRequestBody = "잘못된 요청 형식입니다"
	msgInvalidConfig      = "설정값이 올바르지 않습니다"
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

// Handle PUT /api/v1/facilities/{facilityCode}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityCode := vars["facilityCode"]

	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /facilities/{code}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), facilityCode, &req)
	if err != nil {
		switch {
		case errors.Is(err, formconfig.ErrInvalidInput):
			h.logger.Warn("PUT /facilities/{code}/config - Invalid config: facility=%s, error=%v",
				facilityCode, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /facilities/{code}/config - Failed to update config: facility=%s, error=%v",
				facilityCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /facilities/{code}/config - Config updated: facility=%s", facilityCode)
	handlers.RespondJSON(w, http.StatusOK, result)
}

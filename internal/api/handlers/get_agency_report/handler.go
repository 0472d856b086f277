package get_agency_report

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jspark-dev/JSM-ReservationService/internal/api/handlers"
	"github.com/jspark-dev/JSM-ReservationService/internal/service/reports"
)

const (
	msgInvalidMonth   = "월 형식이 올바르지 않습니다 (YYYY-MM)"
	msgAgencyNotFound = "여행사를 찾을 수 없습니다"
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

// Handle GET /api/v1/facilities/{facilityCode}/agencies/{agencyCode}/report?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityCode := vars["facilityCode"]
	agencyCode := vars["agencyCode"]
	month := r.URL.Query().Get("month")

	result, err := h.service.AgencyReport(r.Context(), facilityCode, agencyCode, month)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{code}/agencies/{agency}/report - Invalid month: %q", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, reports.ErrAgencyNotFound):
			h.logger.Warn("GET /facilities/{code}/agencies/{agency}/report - Agency not found: facility=%s, agency=%s",
				facilityCode, agencyCode)
			handlers.RespondNotFound(w, msgAgencyNotFound)

		default:
			h.logger.Error("GET /facilities/{code}/agencies/{agency}/report - Failed to build report: facility=%s, agency=%s, error=%v",
				facilityCode, agencyCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{code}/agencies/{agency}/report - Report built: facility=%s, agency=%s, month=%s, total=%d",
		facilityCode, agencyCode, month, result.TotalEstimate)
	handlers.RespondJSON(w, http.StatusOK, result)
}

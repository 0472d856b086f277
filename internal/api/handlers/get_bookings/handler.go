package get_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jspark-dev/JSM-ReservationService/internal/api/handlers"
	"github.com/jspark-dev/JSM-ReservationService/internal/service/bookings"
	"github.com/jspark-dev/JSM-ReservationService/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "필터 조건이 올바르지 않습니다"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityCode}/bookings
// Query параметры: date, month, status, agency, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	req := &models.GetBookingsRequest{
		FacilityCode:    vars["facilityCode"],
		IncludeInactive: query.Get("includeInactive") == "true",
	}
	if v := query.Get("date"); v != "" {
		req.Date = &v
	}
	if v := query.Get("month"); v != "" {
		req.Month = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("agency"); v != "" {
		req.Agency = &v
	}

	result, err := h.service.GetFacilityBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{code}/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /facilities/{code}/bookings - Failed to get bookings: facility=%s, error=%v",
				req.FacilityCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{code}/bookings - Retrieved %d bookings: facility=%s",
		len(result.Bookings), req.FacilityCode)
	handlers.RespondJSON(w, http.StatusOK, result)
}

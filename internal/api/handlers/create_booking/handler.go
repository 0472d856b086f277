package create_booking

import (
	"errors"
	"net/http"

	"github.com/jspark-dev/JSM-ReservationService/internal/api/handlers"
	createBooking "github.com/jspark-dev/JSM-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "잘못된 요청 형식입니다"
	msgInvalidInput       = "입력값이 올바르지 않습니다"
	msgInvalidDate        = "방문 날짜가 올바르지 않습니다"
	msgCapacityExceeded   = "해당 날짜의 예약 가능 인원을 초과했습니다"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createBooking.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: facility=%s, date=%s", req.FacilityCode, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: facility=%s, date=%s", req.FacilityCode, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, facility=%s, date=%s",
		result.ID, result.FacilityCode, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

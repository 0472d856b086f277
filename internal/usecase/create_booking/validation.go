package create_booking

import (
	"fmt"
	"time"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityCode == "" {
		return fmt.Errorf("%w: facilityCode is required", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(req.Name)) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must not exceed %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.Etc != nil && len([]rune(*req.Etc)) > domain.MaxEtcLength {
		return fmt.Errorf("%w: etc must not exceed %d characters", ErrInvalidInput, domain.MaxEtcLength)
	}

	if req.Students < 0 || req.Teachers < 0 || req.StudentsChild < 0 || req.StudentsElem < 0 {
		return fmt.Errorf("%w: party counts must not be negative", ErrInvalidInput)
	}
	if req.Students+req.Teachers <= 0 {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be formatted as 2006-01-02", ErrInvalidInput)
	}

	// Время прибытия и отъезда опциональны, но валидны при наличии
	if req.Arrival != "" {
		if err := types.TimeString(req.Arrival).Validate(); err != nil {
			return fmt.Errorf("%w: invalid arrival format: %v", ErrInvalidInput, err)
		}
	}
	if req.Departure != "" {
		if err := types.TimeString(req.Departure).Validate(); err != nil {
			return fmt.Errorf("%w: invalid departure format: %v", ErrInvalidInput, err)
		}
	}
	if req.Arrival != "" && req.Departure != "" {
		arrival := types.TimeString(req.Arrival)
		departure := types.TimeString(req.Departure)
		if !arrival.IsBefore(departure) {
			return fmt.Errorf("%w: departure must be after arrival", ErrInvalidInput)
		}
	}

	return nil
}

// validateDate проверяет, что дата визита не в прошлом
func validateDate(date string, now time.Time) error {
	today := now.Format(domain.DateFormat)
	if date < today {
		return ErrInvalidDate
	}
	return nil
}

// dayHeadcount считает суммарное количество участников активных бронирований
func dayHeadcount(bookings []*domain.Booking) int64 {
	var total int64
	for _, b := range bookings {
		if b.IsActive() {
			total += b.TotalPeople()
		}
	}
	return total
}

package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		FacilityCode:  "JSM",
		Date:          "2026-05-12",
		Name:          "서울유치원",
		Phone:         "010-1234-5678",
		Arrival:       "10:00",
		Departure:     "14:00",
		Students:      30,
		Teachers:      3,
		StudentsChild: 30,
	}
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequestRequiredFields(t *testing.T) {
	req := validRequest()
	req.FacilityCode = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Name = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Date = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequestDateFormat(t *testing.T) {
	req := validRequest()
	req.Date = "2026/05/12"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req.Date = "2026-13-01"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequestPartyCounts(t *testing.T) {
	req := validRequest()
	req.Students = -1
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Students = 0
	req.Teachers = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	// Только сопровождающие - валидный случай
	req = validRequest()
	req.Students = 0
	req.StudentsChild = 0
	req.Teachers = 2
	assert.NoError(t, validateRequest(req))
}

func TestValidateRequestTimes(t *testing.T) {
	req := validRequest()
	req.Arrival = "25:00"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Arrival = "14:00"
	req.Departure = "10:00"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	// Время опционально
	req = validRequest()
	req.Arrival = ""
	req.Departure = ""
	assert.NoError(t, validateRequest(req))
}

func TestValidateRequestFieldLengths(t *testing.T) {
	long := make([]rune, domain.MaxNameLength+1)
	for i := range long {
		long[i] = '가'
	}

	req := validRequest()
	req.Name = string(long)
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Etc = ptr.Ptr(string(make([]rune, domain.MaxEtcLength+1)))
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

	assert.NoError(t, validateDate("2026-05-10", now))
	assert.NoError(t, validateDate("2026-05-11", now))
	assert.ErrorIs(t, validateDate("2026-05-09", now), ErrInvalidDate)
}

func TestDayHeadcount(t *testing.T) {
	bookings := []*domain.Booking{
		{Students: 20, Teachers: 2, Status: domain.StatusConfirmed},
		{Students: 10, Teachers: 1, Status: domain.StatusReceived},
		{Students: 30, Teachers: 3, Status: domain.StatusCancelled},
	}
	assert.Equal(t, int64(33), dayHeadcount(bookings))
}

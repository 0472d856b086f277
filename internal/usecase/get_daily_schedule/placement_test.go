package get_daily_schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/pkg/types"
)

func mkBooking(id int64, arrival, departure string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		Name:      "견학팀",
		Arrival:   types.TimeString(arrival),
		Departure: types.TimeString(departure),
		Students:  10,
		Teachers:  1,
		Status:    domain.StatusConfirmed,
	}
}

func TestSlotRange(t *testing.T) {
	slots := domain.GenerateTimeSlots()
	require.Len(t, slots, 14)

	start, end, ok := slotRange(mkBooking(1, "10:00", "12:00"), len(slots))
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)

	// Прибытие до открытия зажимается в начало сетки
	start, end, ok = slotRange(mkBooking(2, "09:00", "11:00"), len(slots))
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	// Отъезд после закрытия зажимается в конец сетки
	start, end, ok = slotRange(mkBooking(3, "16:00", "19:00"), len(slots))
	require.True(t, ok)
	assert.Equal(t, 12, start)
	assert.Equal(t, 14, end)
}

func TestSlotRangeOutsideHours(t *testing.T) {
	slots := domain.GenerateTimeSlots()

	// Визит целиком до открытия
	_, _, ok := slotRange(mkBooking(1, "08:00", "09:30"), len(slots))
	assert.False(t, ok)

	// Визит целиком после закрытия
	_, _, ok = slotRange(mkBooking(2, "18:00", "19:00"), len(slots))
	assert.False(t, ok)

	// Время не указано
	_, _, ok = slotRange(mkBooking(3, "", ""), len(slots))
	assert.False(t, ok)
}

func TestPlaceBookingsOverlapTakesSecondLane(t *testing.T) {
	lanes := []string{"박물관 관람", "양떼정원"}
	slots := domain.GenerateTimeSlots()

	a := mkBooking(1, "10:00", "12:00")
	b := mkBooking(2, "11:00", "13:00")

	grid, unplaced := placeBookings(lanes, slots, []*domain.Booking{a, b})

	assert.Empty(t, unplaced)
	// Первое бронирование занимает первую дорожку
	assert.Same(t, a, grid[0][0])
	assert.Same(t, a, grid[0][3])
	assert.Nil(t, grid[0][4])
	// Второе пересекается и уходит на вторую дорожку
	assert.Same(t, b, grid[1][2])
	assert.Same(t, b, grid[1][5])
	assert.Nil(t, grid[1][1])
}

func TestPlaceBookingsNoFreeLane(t *testing.T) {
	lanes := []string{"박물관 관람"}
	slots := domain.GenerateTimeSlots()

	a := mkBooking(1, "10:00", "12:00")
	b := mkBooking(2, "11:00", "13:00")

	grid, unplaced := placeBookings(lanes, slots, []*domain.Booking{a, b})

	require.Len(t, unplaced, 1)
	assert.Same(t, b, unplaced[0].Booking)
	assert.Equal(t, ReasonNoLane, unplaced[0].Reason)
	assert.Same(t, a, grid[0][0])
}

func TestPlaceBookingsNonOverlappingShareLane(t *testing.T) {
	lanes := []string{"박물관 관람"}
	slots := domain.GenerateTimeSlots()

	a := mkBooking(1, "10:00", "12:00")
	b := mkBooking(2, "12:00", "14:00")

	_, unplaced := placeBookings(lanes, slots, []*domain.Booking{a, b})
	assert.Empty(t, unplaced)
}

func TestPlaceBookingsOutsideHoursReason(t *testing.T) {
	lanes := []string{"박물관 관람"}
	slots := domain.GenerateTimeSlots()

	early := mkBooking(1, "08:00", "09:00")

	_, unplaced := placeBookings(lanes, slots, []*domain.Booking{early})

	require.Len(t, unplaced, 1)
	assert.Equal(t, ReasonOutsideHours, unplaced[0].Reason)
}

func TestPlaceBookingsSkipsCancelled(t *testing.T) {
	lanes := []string{"박물관 관람"}
	slots := domain.GenerateTimeSlots()

	cancelled := mkBooking(1, "10:00", "12:00")
	cancelled.Status = domain.StatusCancelled

	grid, unplaced := placeBookings(lanes, slots, []*domain.Booking{cancelled})

	assert.Empty(t, unplaced)
	assert.Nil(t, grid[0][0])
}

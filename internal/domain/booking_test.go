package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jspark-dev/JSM-ReservationService/pkg/ptr"
)

func TestBookingStatusNormalize(t *testing.T) {
	assert.Equal(t, StatusConfirmed, StatusConfirmed.Normalize())
	assert.Equal(t, StatusCancelled, StatusCancelled.Normalize())

	// Неизвестные значения из старых данных попадают в статус "접수"
	assert.Equal(t, StatusReceived, BookingStatus("보류").Normalize())
	assert.Equal(t, StatusReceived, BookingStatus("").Normalize())
}

func TestBookingStatusIsKnown(t *testing.T) {
	for _, s := range KnownStatuses {
		assert.True(t, s.IsKnown())
	}
	assert.False(t, BookingStatus("pending").IsKnown())
}

func TestBookingIsActive(t *testing.T) {
	b := &Booking{Status: StatusWaiting}
	assert.True(t, b.IsActive())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
}

func TestBookingIsReconciled(t *testing.T) {
	b := &Booking{}
	assert.False(t, b.IsReconciled())

	b.ActualStudents = ptr.Ptr(int64(20))
	assert.True(t, b.IsReconciled())
}

func TestBookingTotalPeople(t *testing.T) {
	b := &Booking{Students: 30, Teachers: 3}
	assert.Equal(t, int64(33), b.TotalPeople())
}

func TestFindMeal(t *testing.T) {
	cfg := &FormConfig{
		Meals: []MealOption{
			{Name: "오디돈가스", P1: 8000, P2: 10000},
			{Name: "단체도시락", P1: 6000, P2: 7000},
		},
	}

	meal := cfg.FindMeal("단체도시락")
	assert.NotNil(t, meal)
	assert.Equal(t, int64(6000), meal.P1)

	// Совпадение только по точному имени
	assert.Nil(t, cfg.FindMeal("도시락"))
	assert.Nil(t, cfg.FindMeal("없는메뉴"))
}

func TestAgencyFeeAmount(t *testing.T) {
	a := &Agency{Fee: 10}
	assert.Equal(t, int64(45000), a.FeeAmount(450000))

	a.Fee = 0
	assert.Equal(t, int64(0), a.FeeAmount(450000))
}

package get_daily_schedule

import (
	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
)

// UnplacedReason причина, по которой бронирование не попало в сетку
type UnplacedReason string

const (
	// ReasonNoLane все дорожки заняты в запрошенном интервале
	ReasonNoLane UnplacedReason = "no_free_lane"

	// ReasonOutsideHours интервал визита не пересекается с рабочими часами
	ReasonOutsideHours UnplacedReason = "outside_hours"
)

// Unplaced бронирование, не попавшее в сетку, с причиной
type Unplaced struct {
	Booking *domain.Booking
	Reason  UnplacedReason
}

// slotRange возвращает полуоткрытый диапазон индексов сетки [start, end)
// для интервала визита. Индексы зажимаются в границы сетки.
// ok=false, когда время не разбирается или интервал не задевает рабочие часы.
func slotRange(b *domain.Booking, numSlots int) (start, end int, ok bool) {
	if b.Arrival.IsZero() || b.Departure.IsZero() {
		return 0, 0, false
	}

	start, err := domain.SlotIndex(b.Arrival)
	if err != nil {
		return 0, 0, false
	}
	end, err = domain.SlotIndex(b.Departure)
	if err != nil {
		return 0, 0, false
	}

	if start < 0 {
		start = 0
	}
	if end > numSlots {
		end = numSlots
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// placeBookings раскладывает бронирования дня по дорожкам сетки.
// Дорожки перебираются в объявленном порядке; бронирование занимает первую
// дорожку, у которой свободны все ячейки интервала. Не поместившиеся
// бронирования возвращаются отдельным списком с причиной.
func placeBookings(lanes []string, slots []domain.TimeSlot, bookings []*domain.Booking) ([][]*domain.Booking, []Unplaced) {
	grid := make([][]*domain.Booking, len(lanes))
	for i := range grid {
		grid[i] = make([]*domain.Booking, len(slots))
	}

	var unplaced []Unplaced

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		start, end, ok := slotRange(b, len(slots))
		if !ok {
			unplaced = append(unplaced, Unplaced{Booking: b, Reason: ReasonOutsideHours})
			continue
		}

		laneIdx := -1
		for li := range lanes {
			free := true
			for si := start; si < end; si++ {
				if grid[li][si] != nil {
					free = false
					break
				}
			}
			if free {
				laneIdx = li
				break
			}
		}

		if laneIdx < 0 {
			unplaced = append(unplaced, Unplaced{Booking: b, Reason: ReasonNoLane})
			continue
		}

		for si := start; si < end; si++ {
			grid[laneIdx][si] = b
		}
	}

	return grid, unplaced
}

package domain

import (
	"fmt"

	"github.com/jspark-dev/JSM-ReservationService/pkg/types"
)

// TimeSlot a half-hour cell of the daily schedule grid
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
	Label string // "10:00~10:30"
}

// GenerateTimeSlots возвращает фиксированную получасовую сетку рабочего дня
// от OpeningHour до ClosingHour
func GenerateTimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, (ClosingHour-OpeningHour)*2)
	for h := OpeningHour; h < ClosingHour; h++ {
		for m := 0; m < 60; m += SlotDurationMinutes {
			start := types.TimeString(fmt.Sprintf("%02d:%02d", h, m))
			end, _ := start.AddMinutes(SlotDurationMinutes)
			slots = append(slots, TimeSlot{
				Start: start,
				End:   end,
				Label: fmt.Sprintf("%s~%s", start, end),
			})
		}
	}
	return slots
}

// SlotIndex converts an "HH:MM" time into an index of the half-hour grid.
// Minutes past the half hour round down; hours before opening go negative.
func SlotIndex(t types.TimeString) (int, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	return (minutes - OpeningHour*60) / SlotDurationMinutes, nil
}

// DefaultActivities стандартный список активностей (дорожек) расписания
var DefaultActivities = []string{
	"박물관 관람",
	"양떼정원",
	"눈썰매장",
	"키즈카페",
	"누에쉼터",
	"사계절 썰매",
	"자유관람",
}

package get_daily_schedule

import (
	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
)

// Request входные данные запроса расписания дня
type Request struct {
	FacilityCode string
	Date         string
}

// Response расписание дня: сетка дорожек плюс не поместившиеся бронирования
type Response struct {
	Date     string         `json:"date"`
	Slots    []SlotInfo     `json:"slots"`
	Lanes    []Lane         `json:"lanes"`
	Unplaced []UnplacedItem `json:"unplaced"`
}

// SlotInfo описание одной получасовой колонки сетки
type SlotInfo struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// Lane одна дорожка (активность) с ячейками по колонкам
// Ячейка nil - интервал свободен
type Lane struct {
	Activity string  `json:"activity"`
	Cells    []*Cell `json:"cells"`
}

// Cell занятая ячейка сетки
type Cell struct {
	BookingID int64  `json:"bookingId"`
	Name      string `json:"name"`
	People    int64  `json:"people"`
	Status    string `json:"status"`
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
}

// UnplacedItem бронирование, не попавшее в сетку
type UnplacedItem struct {
	BookingID int64  `json:"bookingId"`
	Name      string `json:"name"`
	People    int64  `json:"people"`
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
	Reason    string `json:"reason"`
}

func toCell(b *domain.Booking) *Cell {
	return &Cell{
		BookingID: b.ID,
		Name:      b.Name,
		People:    b.TotalPeople(),
		Status:    string(b.Status),
		Arrival:   b.Arrival.String(),
		Departure: b.Departure.String(),
	}
}

func toResponse(date string, lanes []string, slots []domain.TimeSlot, grid [][]*domain.Booking, unplaced []Unplaced) *Response {
	resp := &Response{
		Date:     date,
		Slots:    make([]SlotInfo, 0, len(slots)),
		Lanes:    make([]Lane, 0, len(lanes)),
		Unplaced: make([]UnplacedItem, 0, len(unplaced)),
	}

	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotInfo{
			Start: s.Start.String(),
			End:   s.End.String(),
			Label: s.Label,
		})
	}

	for li, activity := range lanes {
		lane := Lane{
			Activity: activity,
			Cells:    make([]*Cell, len(slots)),
		}
		for si, b := range grid[li] {
			if b != nil {
				lane.Cells[si] = toCell(b)
			}
		}
		resp.Lanes = append(resp.Lanes, lane)
	}

	for _, u := range unplaced {
		resp.Unplaced = append(resp.Unplaced, UnplacedItem{
			BookingID: u.Booking.ID,
			Name:      u.Booking.Name,
			People:    u.Booking.TotalPeople(),
			Arrival:   u.Booking.Arrival.String(),
			Departure: u.Booking.Departure.String(),
			Reason:    string(u.Reason),
		})
	}

	return resp
}

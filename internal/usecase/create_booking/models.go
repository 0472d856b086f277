package create_booking

import (
	"time"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/pkg/types"
)

// Request входные данные для создания бронирования
type Request struct {
	FacilityCode  string   `json:"facilityCode"`
	Date          string   `json:"date"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Arrival       string   `json:"arrival"`
	Departure     string   `json:"departure"`
	Students      int64    `json:"students"`
	Teachers      int64    `json:"teachers"`
	StudentsChild int64    `json:"studentsChild"`
	StudentsElem  int64    `json:"studentsElem"`
	AgeGroup      string   `json:"ageGroup"`
	CourseType    string   `json:"courseType"`
	Meal          string   `json:"meal"`
	Addons        []string `json:"addons"`
	Etc           *string  `json:"etc,omitempty"`
	Agency        *string  `json:"agency,omitempty"`
	AgencyName    *string  `json:"agencyName,omitempty"`
	Channel       *string  `json:"channel,omitempty"`
	Category      *string  `json:"category,omitempty"`
}

// Response созданное бронирование
type Response struct {
	ID            int64     `json:"id"`
	FacilityCode  string    `json:"facilityCode"`
	Date          string    `json:"date"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Arrival       string    `json:"arrival"`
	Departure     string    `json:"departure"`
	Students      int64     `json:"students"`
	Teachers      int64     `json:"teachers"`
	StudentsChild int64     `json:"studentsChild"`
	StudentsElem  int64     `json:"studentsElem"`
	AgeGroup      string    `json:"ageGroup"`
	CourseType    string    `json:"courseType"`
	Meal          string    `json:"meal"`
	Addons        []string  `json:"addons"`
	Status        string    `json:"status"`
	Etc           *string   `json:"etc,omitempty"`
	Agency        *string   `json:"agency,omitempty"`
	AgencyName    *string   `json:"agencyName,omitempty"`
	Channel       *string   `json:"channel,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Created       string    `json:"created"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// toDomainBooking собирает доменное бронирование из запроса
// Новое бронирование всегда стартует в статусе "접수"
func (r *Request) toDomainBooking(created string) *domain.Booking {
	return &domain.Booking{
		FacilityCode:  r.FacilityCode,
		Date:          r.Date,
		Name:          r.Name,
		Phone:         r.Phone,
		Arrival:       types.TimeString(r.Arrival),
		Departure:     types.TimeString(r.Departure),
		Students:      r.Students,
		Teachers:      r.Teachers,
		StudentsChild: r.StudentsChild,
		StudentsElem:  r.StudentsElem,
		AgeGroup:      r.AgeGroup,
		CourseType:    r.CourseType,
		Meal:          r.Meal,
		Addons:        r.Addons,
		Status:        domain.StatusReceived,
		Etc:           r.Etc,
		Agency:        r.Agency,
		AgencyName:    r.AgencyName,
		Channel:       r.Channel,
		Category:      r.Category,
		Created:       created,
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		FacilityCode:  b.FacilityCode,
		Date:          b.Date,
		Name:          b.Name,
		Phone:         b.Phone,
		Arrival:       b.Arrival.String(),
		Departure:     b.Departure.String(),
		Students:      b.Students,
		Teachers:      b.Teachers,
		StudentsChild: b.StudentsChild,
		StudentsElem:  b.StudentsElem,
		AgeGroup:      b.AgeGroup,
		CourseType:    b.CourseType,
		Meal:          b.Meal,
		Addons:        b.Addons,
		Status:        string(b.Status),
		Etc:           b.Etc,
		Agency:        b.Agency,
		AgencyName:    b.AgencyName,
		Channel:       b.Channel,
		Category:      b.Category,
		Created:       b.Created,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

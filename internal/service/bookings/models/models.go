package models

import (
	"errors"
	"time"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetBookingsRequest запрос на получение бронирований объекта
type GetBookingsRequest struct {
	FacilityCode    string  `json:"facilityCode"`
	Date            *string `json:"date,omitempty"`            // Конкретная дата (опционально)
	Month           *string `json:"month,omitempty"`           // Месяц "2006-01" (опционально)
	Status          *string `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	Agency          *string `json:"agency,omitempty"`          // Фильтр по агентству (опционально)
	IncludeInactive bool    `json:"includeInactive,omitempty"` // Включить отмененные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		FacilityCode:    r.FacilityCode,
		Date:            r.Date,
		Month:           r.Month,
		Agency:          r.Agency,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ActualsRequest запрос на запись фактических данных после визита
type ActualsRequest struct {
	ActualStudents      *int64              `json:"actualStudents"`
	ActualTeachers      *int64              `json:"actualTeachers,omitempty"`
	ActualStudentsChild *int64              `json:"actualStudentsChild,omitempty"`
	ActualStudentsElem  *int64              `json:"actualStudentsElem,omitempty"`
	ActualMeal          *string             `json:"actualMeal,omitempty"`
	ActualAddonQty      []domain.AddonQty   `json:"actualAddonQty,omitempty"`
	ActualMealQty       *domain.MealQty     `json:"actualMealQty,omitempty"`
	ActualEntryPrices   *domain.EntryPrices `json:"actualEntryPrices,omitempty"`
	PaidAmount          *int64              `json:"paidAmount,omitempty"`
}

// ToDomainActuals конвертирует request в domain модель сверки
func (r *ActualsRequest) ToDomainActuals() domain.ActualsUpdate {
	return domain.ActualsUpdate{
		ActualStudents:      r.ActualStudents,
		ActualTeachers:      r.ActualTeachers,
		ActualStudentsChild: r.ActualStudentsChild,
		ActualStudentsElem:  r.ActualStudentsElem,
		ActualMeal:          r.ActualMeal,
		ActualAddonQty:      r.ActualAddonQty,
		ActualMealQty:       r.ActualMealQty,
		ActualEntryPrices:   r.ActualEntryPrices,
		PaidAmount:          r.PaidAmount,
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64  `json:"id"`
	FacilityCode string `json:"facilityCode"`
	Date         string `json:"date"`      // "2026-03-15"
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Arrival      string `json:"arrival"`   // "10:00"
	Departure    string `json:"departure"` // "14:30"

	Students      int64  `json:"students"`
	Teachers      int64  `json:"teachers"`
	StudentsChild int64  `json:"studentsChild"`
	StudentsElem  int64  `json:"studentsElem"`
	AgeGroup      string `json:"ageGroup"`

	CourseType string   `json:"courseType"`
	Meal       string   `json:"meal"`
	Addons     []string `json:"addons"`

	Status string `json:"status"`

	Etc        *string `json:"etc,omitempty"`
	Agency     *string `json:"agency,omitempty"`
	AgencyName *string `json:"agencyName,omitempty"`
	Channel    *string `json:"channel,omitempty"`
	Category   *string `json:"category,omitempty"`

	PaidAmount *int64 `json:"paidAmount,omitempty"`

	ActualStudents      *int64              `json:"actualStudents,omitempty"`
	ActualTeachers      *int64              `json:"actualTeachers,omitempty"`
	ActualStudentsChild *int64              `json:"actualStudentsChild,omitempty"`
	ActualStudentsElem  *int64              `json:"actualStudentsElem,omitempty"`
	ActualMeal          *string             `json:"actualMeal,omitempty"`
	ActualAddonQty      []domain.AddonQty   `json:"actualAddonQty,omitempty"`
	ActualMealQty       *domain.MealQty     `json:"actualMealQty,omitempty"`
	ActualEntryPrices   *domain.EntryPrices `json:"actualEntryPrices,omitempty"`

	Created   string    `json:"created"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// QuoteResponse ответ с рассчитанной сметой
type QuoteResponse struct {
	BookingID  int64              `json:"bookingId"`
	Items      []domain.QuoteItem `json:"items"`
	GrandTotal int64              `json:"grandTotal"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		FacilityCode: b.FacilityCode,
		Date:         b.Date,
		Name:         b.Name,
		Phone:        b.Phone,
		Arrival:      b.Arrival.String(),
		Departure:    b.Departure.String(),

		Students:      b.Students,
		Teachers:      b.Teachers,
		StudentsChild: b.StudentsChild,
		StudentsElem:  b.StudentsElem,
		AgeGroup:      b.AgeGroup,

		CourseType: b.CourseType,
		Meal:       b.Meal,
		Addons:     b.Addons,

		Status: string(b.Status),

		Etc:        b.Etc,
		Agency:     b.Agency,
		AgencyName: b.AgencyName,
		Channel:    b.Channel,
		Category:   b.Category,

		PaidAmount: b.PaidAmount,

		ActualStudents:      b.ActualStudents,
		ActualTeachers:      b.ActualTeachers,
		ActualStudentsChild: b.ActualStudentsChild,
		ActualStudentsElem:  b.ActualStudentsElem,
		ActualMeal:          b.ActualMeal,
		ActualAddonQty:      b.ActualAddonQty,
		ActualMealQty:       b.ActualMealQty,
		ActualEntryPrices:   b.ActualEntryPrices,

		Created:   b.Created,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
// Принимаются только значения закрытого перечисления
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !status.IsKnown() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

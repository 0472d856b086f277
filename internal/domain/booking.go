package domain

import (
	"time"

	"github.com/jspark-dev/JSM-ReservationService/pkg/types"
)

// BookingStatus represents the status of a group reservation
type BookingStatus string

const (
	StatusReceived  BookingStatus = "접수"
	StatusWaiting   BookingStatus = "대기"
	StatusConfirmed BookingStatus = "확정"
	StatusCancelled BookingStatus = "취소"
)

// KnownStatuses закрытый список статусов бронирования
var KnownStatuses = []BookingStatus{
	StatusReceived,
	StatusWaiting,
	StatusConfirmed,
	StatusCancelled,
}

// IsKnown returns true if the status is one of the closed enumeration values
func (s BookingStatus) IsKnown() bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Normalize maps legacy free-form statuses into the closed enumeration.
// Unknown values fall back to the "received" bucket; the raw string stays
// on the record untouched.
func (s BookingStatus) Normalize() BookingStatus {
	if s.IsKnown() {
		return s
	}
	return StatusReceived
}

// Booking represents a single group-visit reservation
type Booking struct {
	ID           int64
	FacilityCode string
	Date         string // "2006-01-02"
	Name         string
	Phone        string
	Arrival      types.TimeString
	Departure    types.TimeString

	// Party composition
	Students      int64 // общее количество детей
	Teachers      int64 // инструкторы/сопровождающие
	StudentsChild int64 // ясли/детсад
	StudentsElem  int64 // начальная школа
	AgeGroup      string

	// Selections
	CourseType string
	Meal       string
	Addons     []string

	Status BookingStatus

	Etc        *string
	Agency     *string
	AgencyName *string
	Channel    *string
	Category   *string

	PaidAmount *int64

	// Post-visit reconciled values. Each field individually overrides the
	// booked value when present; nil means "use the booked value".
	ActualStudents      *int64
	ActualTeachers      *int64
	ActualStudentsChild *int64
	ActualStudentsElem  *int64
	ActualMeal          *string
	ActualAddonQty      []AddonQty
	ActualMealQty       *MealQty
	ActualEntryPrices   *EntryPrices

	Created   string // дата подачи заявки "2006-01-02"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddonQty reconciled quantity for one add-on experience.
// Price == nil means "use the configured price", 0 means "free".
type AddonQty struct {
	Name  string `json:"name"`
	Qty   int64  `json:"qty"`
	Price *int64 `json:"price,omitempty"`
}

// MealQty reconciled per-bracket meal quantities with optional price overrides
type MealQty struct {
	Child      int64  `json:"child"`
	Elem       int64  `json:"elem"`
	Teacher    int64  `json:"teacher"`
	PriceChild *int64 `json:"priceChild,omitempty"`
	PriceElem  *int64 `json:"priceElem,omitempty"`
}

// EntryPrices per-booking entry price overrides.
// nil field = use the configured default, 0 = free entry.
type EntryPrices struct {
	Child   *int64 `json:"child,omitempty"`
	Elem    *int64 `json:"elem,omitempty"`
	Teacher *int64 `json:"teacher,omitempty"`
}

// IsActive returns true if the booking still occupies schedule capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsReconciled returns true if post-visit actuals were recorded.
// Presence of ActualStudents is the marker, per the intake workflow.
func (b *Booking) IsReconciled() bool {
	return b.ActualStudents != nil
}

// TotalPeople возвращает суммарное количество участников (дети + сопровождающие)
func (b *Booking) TotalPeople() int64 {
	return b.Students + b.Teachers
}

// ActualsUpdate полный набор фактических данных после визита
// Применяется к бронированию целиком: nil поля очищают прежние фактические значения
type ActualsUpdate struct {
	ActualStudents      *int64
	ActualTeachers      *int64
	ActualStudentsChild *int64
	ActualStudentsElem  *int64
	ActualMeal          *string
	ActualAddonQty      []AddonQty
	ActualMealQty       *MealQty
	ActualEntryPrices   *EntryPrices
	PaidAmount          *int64
}

// BookingsFilter фильтр для выборки бронирований объекта
type BookingsFilter struct {
	FacilityCode    string         // Обязательный параметр
	Date            *string        // Конкретная дата (опционально)
	Month           *string        // Месяц "2006-01" (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	Agency          *string        // Фильтр по коду агентства (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}

package domain

// Schedule grid constants
const (
	OpeningHour         = 10 // начало рабочего дня
	ClosingHour         = 17 // конец рабочего дня
	SlotDurationMinutes = 30
)

// Format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// MealNone значение поля meal "питание не используется"
const MealNone = "이용안함"

// CategoryUnclassified bucket for bookings without a category
const CategoryUnclassified = "미분류"

// Business validation constants
const (
	MaxNameLength  = 100
	MaxPhoneLength = 20
	MaxEtcLength   = 500
)

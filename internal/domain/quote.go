package domain

// Quote categories
const (
	QuoteCatExperience = "체험료"
	QuoteCatMeal       = "급식"
)

// QuoteItem a single line of an itemized quote
type QuoteItem struct {
	Cat   string `json:"cat"`
	Name  string `json:"name"`
	Qty   int64  `json:"qty"`
	Unit  int64  `json:"unit"`
	Total int64  `json:"total"`
}

// Quote itemized price breakdown for one booking.
// Derived value: recomputed on demand, never persisted.
type Quote struct {
	Items      []QuoteItem `json:"items"`
	GrandTotal int64       `json:"grandTotal"`
}

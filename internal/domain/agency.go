package domain

// Agency represents a travel agency mediating group bookings
type Agency struct {
	Code         string
	FacilityCode string
	Name         string
	Contact      string
	Fee          int64 // комиссия в процентах
	Active       bool
}

// FeeAmount возвращает сумму комиссии от оборота total
func (a *Agency) FeeAmount(total int64) int64 {
	return total * a.Fee / 100
}

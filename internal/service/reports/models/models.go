package models

// DashboardResponse сводные показатели для главного экрана
type DashboardResponse struct {
	Today   DayCard     `json:"today"`
	Month   MonthCard   `json:"month"`
	Insight InsightCard `json:"insight"`
}

// DayCard показатели за сегодняшний день
type DayCard struct {
	Count     int64 `json:"count"`
	People    int64 `json:"people"`
	Waiting   int64 `json:"waiting"`
	Confirmed int64 `json:"confirmed"`
}

// MonthCard показатели за текущий месяц
type MonthCard struct {
	Count      int64 `json:"count"`
	People     int64 `json:"people"`
	Estimate   int64 `json:"estimate"`
	Paid       int64 `json:"paid"`
	PaidCount  int64 `json:"paidCount"`
	PaidPeople int64 `json:"paidPeople"`
}

// InsightCard аналитические показатели
type InsightCard struct {
	ConfirmationRate int64  `json:"confirmationRate"` // %
	CollectionRate   int64  `json:"collectionRate"`   // %
	EstimateGrowth   int64  `json:"estimateGrowth"`   // % к прошлому месяцу
	AvgLeadDays      int64  `json:"avgLeadDays"`
	StaleWaiting     int64  `json:"staleWaiting"`
	TopCategory      string `json:"topCategory"`
}

// WeeklyOverviewResponse обзор недели (7 дней с понедельника)
type WeeklyOverviewResponse struct {
	WeekStart string    `json:"weekStart"`
	Days      []DayStat `json:"days"`
}

// DayStat показатели за один день недели
type DayStat struct {
	Date     string `json:"date"`
	Count    int64  `json:"count"`
	People   int64  `json:"people"`
	Estimate int64  `json:"estimate"`
}

// RevenueStatsResponse ряд выручки по периодам
type RevenueStatsResponse struct {
	Period  string          `json:"period"` // day | week | month
	Buckets []RevenueBucket `json:"buckets"`
}

// RevenueBucket показатели за один период
type RevenueBucket struct {
	Key      string `json:"key"` // дата, понедельник недели или месяц
	Estimate int64  `json:"estimate"`
	Paid     int64  `json:"paid"`
	Count    int64  `json:"count"`
	People   int64  `json:"people"`
}

// CategoryStatsResponse доли по категориям
type CategoryStatsResponse struct {
	Categories []CategoryStat `json:"categories"`
}

// CategoryStat показатели одной категории
type CategoryStat struct {
	Category    string `json:"category"`
	Count       int64  `json:"count"`
	People      int64  `json:"people"`
	Estimate    int64  `json:"estimate"`
	Pct         int64  `json:"pct"` // доля от активных бронирований, %
	AvgPeople   int64  `json:"avgPeople"`
	AvgEstimate int64  `json:"avgEstimate"`
}

// AgencyReportResponse отчет по агентству за месяц
type AgencyReportResponse struct {
	AgencyCode    string              `json:"agencyCode"`
	AgencyName    string              `json:"agencyName"`
	Month         string              `json:"month"`
	FeePct        int64               `json:"feePct"`
	TotalEstimate int64               `json:"totalEstimate"`
	TotalPaid     int64               `json:"totalPaid"`
	TotalCount    int64               `json:"totalCount"`
	TotalPeople   int64               `json:"totalPeople"`
	FeeAmount     int64               `json:"feeAmount"`
	Bookings      []AgencyBookingItem `json:"bookings"`
}

// AgencyBookingItem строка отчета по агентству
type AgencyBookingItem struct {
	BookingID int64  `json:"bookingId"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	People    int64  `json:"people"`
	Status    string `json:"status"`
	Estimate  int64  `json:"estimate"`
	Paid      int64  `json:"paid"`
}

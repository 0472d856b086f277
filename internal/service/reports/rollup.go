package reports

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/internal/pricing"
	"github.com/jspark-dev/JSM-ReservationService/internal/service/reports/models"
)

// Все агрегаты считаются одним проходом по снимку бронирований.
// Отмененные бронирования не участвуют, если явно не сказано иное.
// Проценты и средние округляются до ближайшего целого (half-up).

// roundHalfUp округление к ближайшему целому, 0.5 в большую сторону
func roundHalfUp(x float64) int64 {
	return int64(math.Round(x))
}

// parseDate разбирает дату вида "2006-01-02", ok=false для невалидных строк
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// startOfISOWeek возвращает понедельник недели, в которую попадает t
func startOfISOWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(wd - 1))
}

// bookingCategory возвращает категорию бронирования, 미분류 для пустой
func bookingCategory(b *domain.Booking) string {
	if b.Category == nil || *b.Category == "" {
		return domain.CategoryUnclassified
	}
	return *b.Category
}

func paidOf(b *domain.Booking) int64 {
	if b.PaidAmount == nil {
		return 0
	}
	return *b.PaidAmount
}

// dashboardCards считает карточки дня и месяца
func dashboardCards(bookings []*domain.Booking, cfg *domain.FormConfig, now time.Time) (models.DayCard, models.MonthCard) {
	today := now.Format(domain.DateFormat)
	month := now.Format(domain.MonthFormat)

	var day models.DayCard
	var mon models.MonthCard

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Date == today {
			day.Count++
			day.People += b.TotalPeople()
			if b.Status == domain.StatusWaiting {
				day.Waiting++
			}
			if b.Status == domain.StatusConfirmed {
				day.Confirmed++
			}
		}
		if strings.HasPrefix(b.Date, month) {
			mon.Count++
			mon.People += b.TotalPeople()
			mon.Estimate += pricing.Estimate(b, cfg)
			if paid := paidOf(b); paid > 0 {
				mon.Paid += paid
				mon.PaidCount++
				mon.PaidPeople += b.TotalPeople()
			}
		}
	}
	return day, mon
}

// insightCard считает аналитические показатели за текущий месяц
func insightCard(bookings []*domain.Booking, cfg *domain.FormConfig, now time.Time) models.InsightCard {
	month := now.Format(domain.MonthFormat)
	prevMonth := now.AddDate(0, -1, 0).Format(domain.MonthFormat)

	var (
		monthActive, monthConfirmed int64
		monthEst, monthPaid         int64
		prevEst                     int64
		leadSum, leadN              int64
		staleWaiting                int64
	)
	categoryCount := make(map[string]int64)

	staleBefore := now.AddDate(0, 0, -7)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		if strings.HasPrefix(b.Date, month) {
			monthActive++
			monthEst += pricing.Estimate(b, cfg)
			monthPaid += paidOf(b)
			if b.Status == domain.StatusConfirmed {
				monthConfirmed++
			}
		}
		if strings.HasPrefix(b.Date, prevMonth) {
			prevEst += pricing.Estimate(b, cfg)
		}

		// Срок от подачи заявки до визита; учитываются только валидные даты
		if visit, ok := parseDate(b.Date); ok {
			if created, ok2 := parseDate(b.Created); ok2 {
				days := int64(math.Floor(visit.Sub(created).Hours() / 24))
				if days < 0 {
					days = 0
				}
				leadSum += days
				leadN++
			}
		}

		if b.Status == domain.StatusWaiting {
			if created, ok := parseDate(b.Created); ok && !created.After(staleBefore) {
				staleWaiting++
			}
		}

		categoryCount[bookingCategory(b)]++
	}

	ins := models.InsightCard{StaleWaiting: staleWaiting}

	if monthActive > 0 {
		ins.ConfirmationRate = roundHalfUp(float64(monthConfirmed) / float64(monthActive) * 100)
	}
	if monthEst > 0 {
		ins.CollectionRate = roundHalfUp(float64(monthPaid) / float64(monthEst) * 100)
	}
	if prevEst > 0 {
		ins.EstimateGrowth = roundHalfUp(float64(monthEst-prevEst) / float64(prevEst) * 100)
	}
	if leadN > 0 {
		ins.AvgLeadDays = roundHalfUp(float64(leadSum) / float64(leadN))
	}

	var topCat string
	var topN int64
	for cat, n := range categoryCount {
		if n > topN || (n == topN && (topCat == "" || cat < topCat)) {
			topCat, topN = cat, n
		}
	}
	ins.TopCategory = topCat

	return ins
}

// weeklyOverview собирает показатели 7 дней недели со сдвигом offset
// offset 0 - текущая неделя, -1 - прошлая, 1 - следующая
func weeklyOverview(bookings []*domain.Booking, cfg *domain.FormConfig, now time.Time, offset int) *models.WeeklyOverviewResponse {
	monday := startOfISOWeek(now).AddDate(0, 0, offset*7)

	byDate := make(map[string][]*domain.Booking)
	for _, b := range bookings {
		if b.IsActive() {
			byDate[b.Date] = append(byDate[b.Date], b)
		}
	}

	resp := &models.WeeklyOverviewResponse{
		WeekStart: monday.Format(domain.DateFormat),
		Days:      make([]models.DayStat, 0, 7),
	}
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i).Format(domain.DateFormat)
		stat := models.DayStat{Date: date}
		for _, b := range byDate[date] {
			stat.Count++
			stat.People += b.TotalPeople()
			stat.Estimate += pricing.Estimate(b, cfg)
		}
		resp.Days = append(resp.Days, stat)
	}
	return resp
}

// revenueSeries группирует активные бронирования по периодам
// period: day | week (ключ - понедельник недели) | month
func revenueSeries(bookings []*domain.Booking, cfg *domain.FormConfig, period string) []models.RevenueBucket {
	buckets := make(map[string]*models.RevenueBucket)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		var key string
		switch period {
		case periodDay:
			key = b.Date
		case periodWeek:
			visit, ok := parseDate(b.Date)
			if !ok {
				continue
			}
			key = startOfISOWeek(visit).Format(domain.DateFormat)
		case periodMonth:
			if len(b.Date) < len(domain.MonthFormat) {
				continue
			}
			key = b.Date[:len(domain.MonthFormat)]
		default:
			continue
		}

		bucket, ok := buckets[key]
		if !ok {
			bucket = &models.RevenueBucket{Key: key}
			buckets[key] = bucket
		}
		bucket.Estimate += pricing.Estimate(b, cfg)
		bucket.Paid += paidOf(b)
		bucket.Count++
		bucket.People += b.TotalPeople()
	}

	result := make([]models.RevenueBucket, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}

// categoryShares считает доли категорий среди активных бронирований
func categoryShares(bookings []*domain.Booking, cfg *domain.FormConfig) []models.CategoryStat {
	stats := make(map[string]*models.CategoryStat)
	var activeTotal int64

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		activeTotal++

		cat := bookingCategory(b)
		stat, ok := stats[cat]
		if !ok {
			stat = &models.CategoryStat{Category: cat}
			stats[cat] = stat
		}
		stat.Count++
		stat.People += b.TotalPeople()
		stat.Estimate += pricing.Estimate(b, cfg)
	}

	result := make([]models.CategoryStat, 0, len(stats))
	for _, stat := range stats {
		if activeTotal > 0 {
			stat.Pct = roundHalfUp(float64(stat.Count) / float64(activeTotal) * 100)
		}
		if stat.Count > 0 {
			stat.AvgPeople = roundHalfUp(float64(stat.People) / float64(stat.Count))
			stat.AvgEstimate = roundHalfUp(float64(stat.Estimate) / float64(stat.Count))
		}
		result = append(result, *stat)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})
	return result
}

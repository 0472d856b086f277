package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/pkg/ptr"
)

func reportConfig() *domain.FormConfig {
	return &domain.FormConfig{
		FacilityCode: "JSM",
		EntryP1:      1000,
		EntryP2:      2000,
		EntryTea:     500,
	}
}

func mkBooking(date, created string, students, teachers int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		FacilityCode:  "JSM",
		Date:          date,
		Created:       created,
		Students:      students,
		StudentsChild: students,
		Teachers:      teachers,
		Status:        status,
	}
}

func TestDashboardCards(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := reportConfig()

	today := mkBooking("2026-03-15", "2026-03-01", 10, 2, domain.StatusConfirmed)
	todayWaiting := mkBooking("2026-03-15", "2026-03-02", 5, 1, domain.StatusWaiting)
	monthPaid := mkBooking("2026-03-20", "2026-03-03", 20, 2, domain.StatusConfirmed)
	monthPaid.PaidAmount = ptr.Ptr(int64(15000))
	cancelled := mkBooking("2026-03-15", "2026-03-04", 30, 3, domain.StatusCancelled)
	otherMonth := mkBooking("2026-04-01", "2026-03-05", 8, 1, domain.StatusReceived)

	day, month := dashboardCards(
		[]*domain.Booking{today, todayWaiting, monthPaid, cancelled, otherMonth}, cfg, now)

	assert.Equal(t, int64(2), day.Count)
	assert.Equal(t, int64(18), day.People)
	assert.Equal(t, int64(1), day.Waiting)
	assert.Equal(t, int64(1), day.Confirmed)

	assert.Equal(t, int64(3), month.Count)
	assert.Equal(t, int64(40), month.People)
	// 10*1000+2*500 + 5*1000+500 + 20*1000+2*500
	assert.Equal(t, int64(37500), month.Estimate)
	assert.Equal(t, int64(15000), month.Paid)
	assert.Equal(t, int64(1), month.PaidCount)
	assert.Equal(t, int64(22), month.PaidPeople)
}

func TestInsightAvgLeadDaysRoundsHalfUp(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	cfg := reportConfig()

	// (7+0)/2 = 3.5 -> 4
	b1 := mkBooking("2026-02-08", "2026-02-01", 10, 1, domain.StatusReceived)
	b2 := mkBooking("2026-02-10", "2026-02-10", 10, 1, domain.StatusReceived)

	ins := insightCard([]*domain.Booking{b1, b2}, cfg, now)
	assert.Equal(t, int64(4), ins.AvgLeadDays)
}

func TestInsightLeadTimeSkipsInvalidDatesAndClampsNegative(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	cfg := reportConfig()

	// Заявка подана после даты визита: срок зажимается в 0
	late := mkBooking("2026-02-10", "2026-02-15", 10, 1, domain.StatusReceived)
	invalid := mkBooking("not-a-date", "2026-02-01", 10, 1, domain.StatusReceived)
	normal := mkBooking("2026-02-11", "2026-02-05", 10, 1, domain.StatusReceived)

	ins := insightCard([]*domain.Booking{late, invalid, normal}, cfg, now)
	// (0+6)/2 = 3
	assert.Equal(t, int64(3), ins.AvgLeadDays)
}

func TestInsightRatesAndGrowth(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := reportConfig()

	// Текущий месяц: 2 активных, 1 подтверждено
	conf := mkBooking("2026-03-10", "2026-03-01", 10, 0, domain.StatusConfirmed) // est 10000
	conf.PaidAmount = ptr.Ptr(int64(5000))
	recv := mkBooking("2026-03-12", "2026-03-02", 10, 0, domain.StatusReceived) // est 10000
	// Прошлый месяц: est 10000
	prev := mkBooking("2026-02-10", "2026-02-01", 10, 0, domain.StatusConfirmed)

	ins := insightCard([]*domain.Booking{conf, recv, prev}, cfg, now)

	assert.Equal(t, int64(50), ins.ConfirmationRate)
	// 5000 / 20000 = 25%
	assert.Equal(t, int64(25), ins.CollectionRate)
	// (20000-10000)/10000 = +100%
	assert.Equal(t, int64(100), ins.EstimateGrowth)
}

func TestInsightStaleWaiting(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := reportConfig()

	stale := mkBooking("2026-04-01", "2026-03-01", 10, 1, domain.StatusWaiting)
	fresh := mkBooking("2026-04-01", "2026-03-12", 10, 1, domain.StatusWaiting)
	confirmed := mkBooking("2026-04-01", "2026-03-01", 10, 1, domain.StatusConfirmed)

	ins := insightCard([]*domain.Booking{stale, fresh, confirmed}, cfg, now)
	assert.Equal(t, int64(1), ins.StaleWaiting)
}

func TestInsightTopCategory(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := reportConfig()

	a := mkBooking("2026-03-10", "2026-03-01", 10, 1, domain.StatusReceived)
	a.Category = ptr.Ptr("유치원")
	b := mkBooking("2026-03-11", "2026-03-01", 10, 1, domain.StatusReceived)
	b.Category = ptr.Ptr("유치원")
	c := mkBooking("2026-03-12", "2026-03-01", 10, 1, domain.StatusReceived)

	ins := insightCard([]*domain.Booking{a, b, c}, cfg, now)
	assert.Equal(t, "유치원", ins.TopCategory)
}

func TestWeeklyOverview(t *testing.T) {
	// 2026-03-15 - воскресенье, понедельник недели - 2026-03-09
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := reportConfig()

	mon := mkBooking("2026-03-09", "2026-03-01", 10, 2, domain.StatusConfirmed)
	wed := mkBooking("2026-03-11", "2026-03-01", 5, 1, domain.StatusReceived)
	cancelled := mkBooking("2026-03-11", "2026-03-01", 7, 1, domain.StatusCancelled)

	resp := weeklyOverview([]*domain.Booking{mon, wed, cancelled}, cfg, now, 0)

	require.Len(t, resp.Days, 7)
	assert.Equal(t, "2026-03-09", resp.WeekStart)
	assert.Equal(t, "2026-03-09", resp.Days[0].Date)
	assert.Equal(t, int64(1), resp.Days[0].Count)
	assert.Equal(t, int64(12), resp.Days[0].People)
	assert.Equal(t, int64(11000), resp.Days[0].Estimate)
	assert.Equal(t, int64(1), resp.Days[2].Count)
	assert.Equal(t, int64(0), resp.Days[6].Count)
}

func TestWeeklyOverviewOffset(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := reportConfig()

	resp := weeklyOverview(nil, cfg, now, -1)
	assert.Equal(t, "2026-03-02", resp.WeekStart)

	resp = weeklyOverview(nil, cfg, now, 1)
	assert.Equal(t, "2026-03-16", resp.WeekStart)
}

func TestRevenueSeriesByDay(t *testing.T) {
	cfg := reportConfig()

	b1 := mkBooking("2026-03-10", "2026-03-01", 10, 0, domain.StatusConfirmed)
	b1.PaidAmount = ptr.Ptr(int64(3000))
	b2 := mkBooking("2026-03-10", "2026-03-01", 5, 0, domain.StatusReceived)
	b3 := mkBooking("2026-03-12", "2026-03-01", 8, 0, domain.StatusConfirmed)

	buckets := revenueSeries([]*domain.Booking{b3, b1, b2}, cfg, periodDay)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-03-10", buckets[0].Key)
	assert.Equal(t, int64(15000), buckets[0].Estimate)
	assert.Equal(t, int64(3000), buckets[0].Paid)
	assert.Equal(t, int64(2), buckets[0].Count)
	assert.Equal(t, int64(15), buckets[0].People)
	assert.Equal(t, "2026-03-12", buckets[1].Key)
}

func TestRevenueSeriesByWeekUsesMondayKey(t *testing.T) {
	cfg := reportConfig()

	// 2026-03-11 среда и 2026-03-13 пятница - одна неделя с понедельником 2026-03-09
	b1 := mkBooking("2026-03-11", "2026-03-01", 10, 0, domain.StatusConfirmed)
	b2 := mkBooking("2026-03-13", "2026-03-01", 5, 0, domain.StatusConfirmed)
	next := mkBooking("2026-03-16", "2026-03-01", 8, 0, domain.StatusConfirmed)

	buckets := revenueSeries([]*domain.Booking{b1, b2, next}, cfg, periodWeek)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-03-09", buckets[0].Key)
	assert.Equal(t, int64(2), buckets[0].Count)
	assert.Equal(t, "2026-03-16", buckets[1].Key)
}

func TestRevenueSeriesByMonth(t *testing.T) {
	cfg := reportConfig()

	b1 := mkBooking("2026-02-10", "2026-02-01", 10, 0, domain.StatusConfirmed)
	b2 := mkBooking("2026-03-10", "2026-03-01", 5, 0, domain.StatusConfirmed)

	buckets := revenueSeries([]*domain.Booking{b2, b1}, cfg, periodMonth)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-02", buckets[0].Key)
	assert.Equal(t, "2026-03", buckets[1].Key)
}

func TestCategorySharesRounding(t *testing.T) {
	cfg := reportConfig()

	a := mkBooking("2026-03-10", "2026-03-01", 10, 1, domain.StatusReceived)
	a.Category = ptr.Ptr("초등학교")
	b := mkBooking("2026-03-11", "2026-03-01", 15, 2, domain.StatusReceived)
	b.Category = ptr.Ptr("초등학교")
	c := mkBooking("2026-03-12", "2026-03-01", 7, 1, domain.StatusReceived)

	stats := categoryShares([]*domain.Booking{a, b, c}, cfg)

	require.Len(t, stats, 2)
	top := stats[0]
	assert.Equal(t, "초등학교", top.Category)
	assert.Equal(t, int64(2), top.Count)
	// 2/3 = 66.67% -> 67
	assert.Equal(t, int64(67), top.Pct)
	// (11+17)/2 = 14
	assert.Equal(t, int64(14), top.AvgPeople)

	assert.Equal(t, domain.CategoryUnclassified, stats[1].Category)
	assert.Equal(t, int64(33), stats[1].Pct)
}

func TestCategorySharesExcludesCancelled(t *testing.T) {
	cfg := reportConfig()

	active := mkBooking("2026-03-10", "2026-03-01", 10, 1, domain.StatusReceived)
	cancelled := mkBooking("2026-03-11", "2026-03-01", 10, 1, domain.StatusCancelled)

	stats := categoryShares([]*domain.Booking{active, cancelled}, cfg)

	require.Len(t, stats, 1)
	assert.Equal(t, int64(100), stats[0].Pct)
}

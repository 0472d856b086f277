package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/pkg/ptr"
)

func testConfig() *domain.FormConfig {
	return &domain.FormConfig{
		FacilityCode:   "jsm",
		EntryP1:        15000,
		EntryP2:        13000,
		EntryTea:       12000,
		FreeRatioChild: 10,
		FreeRatioElem:  10,
		Meals: []domain.MealOption{
			{Name: "오디돈가스", P1: 8000, P2: 10000},
		},
		Addons: []domain.AddonOption{
			{Name: "젤캔들", Price: 10000},
			{Name: "먹이주기", Price: 2000},
		},
	}
}

func findItem(t *testing.T, q *domain.Quote, name string) *domain.QuoteItem {
	t.Helper()
	for i := range q.Items {
		if q.Items[i].Name == name {
			return &q.Items[i]
		}
	}
	return nil
}

func TestCalcQuote_EntryAndFreeChaperones(t *testing.T) {
	cfg := testConfig()

	// 30 детей младшей группы, 3 сопровождающих: квота 3 бесплатных,
	// платных нет - строка сопровождающих не создается вовсе
	booking := &domain.Booking{
		Students:      30,
		Teachers:      3,
		StudentsChild: 30,
		StudentsElem:  0,
		Meal:          domain.MealNone,
	}

	quote := CalcQuote(booking, cfg)

	require.Len(t, quote.Items, 1)
	entry := quote.Items[0]
	assert.Equal(t, "기본입장-유아", entry.Name)
	assert.Equal(t, int64(30), entry.Qty)
	assert.Equal(t, int64(15000), entry.Unit)
	assert.Equal(t, int64(450000), entry.Total)
	assert.Equal(t, int64(450000), quote.GrandTotal)
}

func TestCalcQuote_MealAddsLines(t *testing.T) {
	cfg := testConfig()

	booking := &domain.Booking{
		Students:      30,
		Teachers:      3,
		StudentsChild: 30,
		Meal:          "오디돈가스",
	}

	quote := CalcQuote(booking, cfg)

	// Вход 450000 + питание детей 240000 + питание сопровождающих 30000
	child := findItem(t, quote, "단체식-유아(오디돈가스)")
	require.NotNil(t, child)
	assert.Equal(t, int64(30), child.Qty)
	assert.Equal(t, int64(8000), child.Unit)
	assert.Equal(t, int64(240000), child.Total)

	tea := findItem(t, quote, "단체식-인솔(오디돈가스)")
	require.NotNil(t, tea)
	assert.Equal(t, int64(3), tea.Qty)
	assert.Equal(t, int64(10000), tea.Unit)

	assert.Equal(t, int64(450000+240000+30000), quote.GrandTotal)
}

func TestCalcQuote_PaidChaperones(t *testing.T) {
	cfg := testConfig()

	// 25 детей: квота floor(25/10)=2 бесплатных, 5-2=3 платных
	booking := &domain.Booking{
		Students:      25,
		Teachers:      5,
		StudentsChild: 25,
		Meal:          domain.MealNone,
	}

	quote := CalcQuote(booking, cfg)

	tea := findItem(t, quote, "인솔자 입장료 (2명 무료, 3명 유료)")
	require.NotNil(t, tea)
	assert.Equal(t, int64(3), tea.Qty)
	assert.Equal(t, int64(12000), tea.Unit)
	assert.Equal(t, int64(36000), tea.Total)
}

func TestCalcQuote_FreeRatioZeroMeansNoFreeSlots(t *testing.T) {
	cfg := testConfig()
	cfg.FreeRatioChild = 0
	cfg.FreeRatioElem = 0

	booking := &domain.Booking{
		Students:      20,
		Teachers:      2,
		StudentsChild: 20,
		Meal:          domain.MealNone,
	}

	quote := CalcQuote(booking, cfg)

	// Деления на ноль нет, бесплатных мест нет - все сопровождающие платные
	tea := findItem(t, quote, "인솔자 입장료 (0명 무료, 2명 유료)")
	require.NotNil(t, tea)
	assert.Equal(t, int64(2), tea.Qty)
}

func TestCalcQuote_NegativePaidChaperonesClamped(t *testing.T) {
	cfg := testConfig()

	// Квота 3 бесплатных при одном сопровождающем: строка не создается,
	// отрицательных позиций в смете быть не должно
	booking := &domain.Booking{
		Students:      30,
		Teachers:      1,
		StudentsChild: 30,
		Meal:          domain.MealNone,
	}

	quote := CalcQuote(booking, cfg)

	for _, item := range quote.Items {
		assert.GreaterOrEqual(t, item.Qty, int64(0))
		assert.GreaterOrEqual(t, item.Total, int64(0))
	}
	require.Len(t, quote.Items, 1)
}

func TestCalcQuote_BookedCountsWhenNoActuals(t *testing.T) {
	cfg := testConfig()

	booking := &domain.Booking{
		Students:      18,
		Teachers:      2,
		StudentsChild: 10,
		StudentsElem:  8,
		Meal:          domain.MealNone,
	}

	quote := CalcQuote(booking, cfg)

	child := findItem(t, quote, "기본입장-유아")
	require.NotNil(t, child)
	assert.Equal(t, int64(10), child.Qty)

	elem := findItem(t, quote, "기본입장-초등")
	require.NotNil(t, elem)
	assert.Equal(t, int64(8), elem.Qty)
	assert.Equal(t, int64(13000), elem.Unit)
}

func TestCalcQuote_ActualsWinFieldByField(t *testing.T) {
	cfg := testConfig()

	// actualStudents записан, actualTeachers нет: количество детей берется
	// из факта, сопровождающие - из заявки
	booking := &domain.Booking{
		Students:       30,
		Teachers:       5,
		StudentsChild:  30,
		Meal:           domain.MealNone,
		ActualStudents: ptr.Ptr(int64(22)),
	}

	quote := CalcQuote(booking, cfg)

	child := findItem(t, quote, "기본입장-유아")
	require.NotNil(t, child)
	assert.Equal(t, int64(22), child.Qty, "actual student count must be used")

	// 22 детей -> 2 бесплатных, 5 заявленных сопровождающих -> 3 платных
	tea := findItem(t, quote, "인솔자 입장료 (2명 무료, 3명 유료)")
	require.NotNil(t, tea, "booked teacher count must survive when its actual is nil")
}

func TestCalcQuote_EntryPriceOverrideZeroIsFree(t *testing.T) {
	cfg := testConfig()

	booking := &domain.Booking{
		Students:      10,
		StudentsChild: 10,
		Meal:          domain.MealNone,
		ActualEntryPrices: &domain.EntryPrices{
			Child: ptr.Ptr(int64(0)),
		},
	}

	quote := CalcQuote(booking, cfg)

	child := findItem(t, quote, "기본입장-유아")
	require.NotNil(t, child, "zero price still emits the line item")
	assert.Equal(t, int64(0), child.Unit)
	assert.Equal(t, int64(0), child.Total)
}

func TestCalcQuote_BookedAddonsSubstringMatch(t *testing.T) {
	cfg := testConfig()

	booking := &domain.Booking{
		Students:      12,
		StudentsChild: 12,
		Meal:          domain.MealNone,
		Addons:        []string{"젤캔들 만들기", "승마"},
	}

	quote := CalcQuote(booking, cfg)

	addon := findItem(t, quote, "젤캔들 체험")
	require.NotNil(t, addon)
	assert.Equal(t, int64(12), addon.Qty, "booked addon is priced per student")
	assert.Equal(t, int64(10000), addon.Unit)

	// Не настроенная программа не создает позицию
	assert.Nil(t, findItem(t, quote, "승마 체험"))
}

func TestCalcQuote_ActualAddonQtyOverrides(t *testing.T) {
	cfg := testConfig()

	booking := &domain.Booking{
		Students:       20,
		StudentsChild:  20,
		Meal:           domain.MealNone,
		Addons:         []string{"젤캔들"},
		ActualStudents: ptr.Ptr(int64(20)),
		ActualAddonQty: []domain.AddonQty{
			{Name: "젤캔들", Qty: 15},
			{Name: "먹이주기", Qty: 0},
			{Name: "야외체험", Qty: 5, Price: ptr.Ptr(int64(0))},
		},
	}

	quote := CalcQuote(booking, cfg)

	gel := findItem(t, quote, "젤캔들 체험")
	require.NotNil(t, gel)
	assert.Equal(t, int64(15), gel.Qty)
	assert.Equal(t, int64(10000), gel.Unit, "configured price used when override is nil")

	// Нулевое количество пропускается
	assert.Nil(t, findItem(t, quote, "먹이주기 체험"))

	// Переопределение цены 0 валидно и отличается от отсутствия программы
	free := findItem(t, quote, "야외체험 체험")
	require.NotNil(t, free)
	assert.Equal(t, int64(5), free.Qty)
	assert.Equal(t, int64(0), free.Unit)
	assert.Equal(t, int64(0), free.Total)
}

func TestCalcQuote_ActualMealQty(t *testing.T) {
	cfg := testConfig()

	booking := &domain.Booking{
		Students:       30,
		Teachers:       3,
		StudentsChild:  30,
		Meal:           "오디돈가스",
		ActualStudents: ptr.Ptr(int64(28)),
		ActualMealQty: &domain.MealQty{
			Child:      25,
			Elem:       0,
			Teacher:    2,
			PriceChild: ptr.Ptr(int64(7500)),
		},
	}

	quote := CalcQuote(booking, cfg)

	child := findItem(t, quote, "단체식-유아(오디돈가스)")
	require.NotNil(t, child)
	assert.Equal(t, int64(25), child.Qty)
	assert.Equal(t, int64(7500), child.Unit, "per-bracket price override applies")

	assert.Nil(t, findItem(t, quote, "단체식-초등(오디돈가스)"), "zero bracket skipped")

	tea := findItem(t, quote, "단체식-인솔(오디돈가스)")
	require.NotNil(t, tea)
	assert.Equal(t, int64(10000), tea.Unit, "teacher bracket uses the elem price")
}

func TestCalcQuote_UnknownMealEmitsNothing(t *testing.T) {
	cfg := testConfig()

	booking := &domain.Booking{
		Students:      10,
		StudentsChild: 10,
		Meal:          "산채비빔밥",
	}

	quote := CalcQuote(booking, cfg)

	for _, item := range quote.Items {
		assert.NotEqual(t, domain.QuoteCatMeal, item.Cat,
			"no meal line may be emitted against a missing price")
	}
}

func TestCalcQuote_GrandTotalIsSumOfItems(t *testing.T) {
	cfg := testConfig()

	booking := &domain.Booking{
		Students:      25,
		Teachers:      4,
		StudentsChild: 15,
		StudentsElem:  10,
		Meal:          "오디돈가스",
		Addons:        []string{"먹이주기"},
	}

	quote := CalcQuote(booking, cfg)

	var sum int64
	for _, item := range quote.Items {
		assert.Equal(t, item.Qty*item.Unit, item.Total)
		sum += item.Total
	}
	assert.Equal(t, sum, quote.GrandTotal)
}

func TestCalcQuote_BookedChildFallsBackToAllStudents(t *testing.T) {
	cfg := testConfig()

	// Заявка без разбивки по возрастам: все дети считаются младшей группой
	booking := &domain.Booking{
		Students: 17,
		Meal:     domain.MealNone,
	}

	quote := CalcQuote(booking, cfg)

	child := findItem(t, quote, "기본입장-유아")
	require.NotNil(t, child)
	assert.Equal(t, int64(17), child.Qty)
}

func TestEstimate(t *testing.T) {
	cfg := testConfig()

	booking := &domain.Booking{
		Students:      30,
		Teachers:      3,
		StudentsChild: 30,
		Meal:          "오디돈가스",
	}

	assert.Equal(t, int64(450000+240000+30000), Estimate(booking, cfg))
}

// Package pricing реализует расчет сметы (견적) для группового бронирования.
// Все функции чистые: принимают снапшот бронирования и конфигурации цен
// и не имеют побочных эффектов.
package pricing

import (
	"fmt"
	"strings"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/pkg/ptr"
)

// partyCounts эффективный состав группы после сверки факта с заявкой
type partyCounts struct {
	students int64 // все дети
	teachers int64 // сопровождающие
	child    int64 // ясли/детсад
	elem     int64 // начальная школа
}

// effectiveCounts выбирает фактические или заявленные количества.
// Если записан actualStudents, бронирование считается сверенным: каждое
// фактическое поле используется отдельно, с откатом на заявленное значение
// при nil. Иначе используются заявленные количества как есть.
func effectiveCounts(b *domain.Booking) partyCounts {
	if b.IsReconciled() {
		stu := *b.ActualStudents
		return partyCounts{
			students: stu,
			teachers: ptr.Deref(b.ActualTeachers, b.Teachers),
			child:    ptr.Deref(b.ActualStudentsChild, stu),
			elem:     ptr.Deref(b.ActualStudentsElem, 0),
		}
	}

	child := b.StudentsChild
	if child == 0 {
		// Заявка без разбивки по возрастам - считаем всех детей младшей группой
		child = b.Students
	}

	return partyCounts{
		students: b.Students,
		teachers: b.Teachers,
		child:    child,
		elem:     b.StudentsElem,
	}
}

// entryPrices эффективные единичные цены входных билетов
// Переопределение 0 валидно и означает бесплатный вход; nil = цена из конфигурации
func entryPrices(b *domain.Booking, cfg *domain.FormConfig) (child, elem, teacher int64) {
	child, elem, teacher = cfg.EntryP1, cfg.EntryP2, cfg.EntryTea
	if b.ActualEntryPrices == nil {
		return child, elem, teacher
	}
	if b.ActualEntryPrices.Child != nil {
		child = *b.ActualEntryPrices.Child
	}
	if b.ActualEntryPrices.Elem != nil {
		elem = *b.ActualEntryPrices.Elem
	}
	if b.ActualEntryPrices.Teacher != nil {
		teacher = *b.ActualEntryPrices.Teacher
	}
	return child, elem, teacher
}

// freeChaperones вычисляет количество бесплатных мест сопровождающих
// по правилу "1 бесплатное место на N платных детей каждой группы"
// Коэффициент 0 означает отсутствие бесплатных мест (не деление на ноль)
func freeChaperones(counts partyCounts, cfg *domain.FormConfig) int64 {
	var free int64
	if cfg.FreeRatioChild > 0 {
		free += counts.child / cfg.FreeRatioChild
	}
	if cfg.FreeRatioElem > 0 {
		free += counts.elem / cfg.FreeRatioElem
	}
	return free
}

// CalcQuote computes the itemized quote for a booking against the facility
// pricing configuration. Deterministic for given inputs; the result is a
// derived value and is never persisted.
func CalcQuote(b *domain.Booking, cfg *domain.FormConfig) *domain.Quote {
	items := make([]domain.QuoteItem, 0, 8)

	counts := effectiveCounts(b)
	ePC, ePE, ePT := entryPrices(b, cfg)

	// Входные билеты по возрастным группам
	if counts.child > 0 {
		items = append(items, domain.QuoteItem{
			Cat:   domain.QuoteCatExperience,
			Name:  "기본입장-유아",
			Qty:   counts.child,
			Unit:  ePC,
			Total: counts.child * ePC,
		})
	}
	if counts.elem > 0 {
		items = append(items, domain.QuoteItem{
			Cat:   domain.QuoteCatExperience,
			Name:  "기본입장-초등",
			Qty:   counts.elem,
			Unit:  ePE,
			Total: counts.elem * ePE,
		})
	}

	// Сопровождающие: платные места сверх бесплатной квоты
	free := freeChaperones(counts, cfg)
	paid := counts.teachers - free
	if paid < 0 {
		paid = 0
	}
	if paid > 0 {
		items = append(items, domain.QuoteItem{
			Cat:   domain.QuoteCatExperience,
			Name:  fmt.Sprintf("인솔자 입장료 (%d명 무료, %d명 유료)", free, paid),
			Qty:   paid,
			Unit:  ePT,
			Total: paid * ePT,
		})
	}

	items = append(items, addonItems(b, cfg, counts)...)
	items = append(items, mealItems(b, cfg, counts)...)

	var grandTotal int64
	for _, item := range items {
		grandTotal += item.Total
	}

	return &domain.Quote{Items: items, GrandTotal: grandTotal}
}

// addonItems строки сметы для дополнительных программ
func addonItems(b *domain.Booking, cfg *domain.FormConfig, counts partyCounts) []domain.QuoteItem {
	items := make([]domain.QuoteItem, 0, len(b.Addons))

	// Фактические количества имеют приоритет над заявленными программами
	if len(b.ActualAddonQty) > 0 {
		priceMap := cfg.AddonPriceMap()
		for _, aq := range b.ActualAddonQty {
			if aq.Qty <= 0 {
				continue
			}
			price := ptr.Deref(aq.Price, priceMap[aq.Name])
			items = append(items, domain.QuoteItem{
				Cat:   domain.QuoteCatExperience,
				Name:  fmt.Sprintf("%s 체험", aq.Name),
				Qty:   aq.Qty,
				Unit:  price,
				Total: aq.Qty * price,
			})
		}
		return items
	}

	// Заявленные программы сопоставляются с конфигурацией по вхождению
	// подстроки, первая совпавшая выигрывает. Количество = все дети.
	for _, booked := range b.Addons {
		for _, opt := range cfg.Addons {
			if strings.Contains(booked, opt.Name) {
				items = append(items, domain.QuoteItem{
					Cat:   domain.QuoteCatExperience,
					Name:  fmt.Sprintf("%s 체험", opt.Name),
					Qty:   counts.students,
					Unit:  opt.Price,
					Total: counts.students * opt.Price,
				})
				break
			}
		}
	}

	return items
}

// mealItems строки сметы для группового питания
// Питание сопоставляется по точному имени; без совпадения строки не создаются
// (смета не должна содержать позиции без настроенной цены)
func mealItems(b *domain.Booking, cfg *domain.FormConfig, counts partyCounts) []domain.QuoteItem {
	if b.Meal == "" || b.Meal == domain.MealNone {
		return nil
	}

	menu := cfg.FindMeal(b.Meal)
	if menu == nil {
		return nil
	}

	items := make([]domain.QuoteItem, 0, 3)

	if mq := b.ActualMealQty; mq != nil {
		p1 := ptr.Deref(mq.PriceChild, menu.P1)
		p2 := ptr.Deref(mq.PriceElem, menu.P2)
		if mq.Child > 0 {
			items = append(items, mealItem("유아", menu.Name, mq.Child, p1))
		}
		if mq.Elem > 0 {
			items = append(items, mealItem("초등", menu.Name, mq.Elem, p2))
		}
		if mq.Teacher > 0 {
			// Сопровождающие едят по тарифу начальной школы
			items = append(items, mealItem("인솔", menu.Name, mq.Teacher, p2))
		}
		return items
	}

	if counts.child > 0 {
		items = append(items, mealItem("유아", menu.Name, counts.child, menu.P1))
	}
	if counts.elem > 0 {
		items = append(items, mealItem("초등", menu.Name, counts.elem, menu.P2))
	}
	if counts.teachers > 0 {
		items = append(items, mealItem("인솔", menu.Name, counts.teachers, menu.P2))
	}

	return items
}

func mealItem(bracket, mealName string, qty, unit int64) domain.QuoteItem {
	return domain.QuoteItem{
		Cat:   domain.QuoteCatMeal,
		Name:  fmt.Sprintf("단체식-%s(%s)", bracket, mealName),
		Qty:   qty,
		Unit:  unit,
		Total: qty * unit,
	}
}

// Estimate возвращает итоговую сумму сметы без детализации
func Estimate(b *domain.Booking, cfg *domain.FormConfig) int64 {
	return CalcQuote(b, cfg).GrandTotal
}

package domain

import "time"

// FormConfig represents the per-facility pricing and intake configuration.
// Loaded once per facility and passed into the quote engine as an immutable
// snapshot; the engine never mutates it.
type FormConfig struct {
	FacilityCode string

	// Entry unit prices (won)
	EntryP1  int64 // ясли/детсад
	EntryP2  int64 // начальная школа
	EntryTea int64 // сопровождающие

	// One free chaperone per N paying children of the bracket.
	// 0 = бесплатных мест нет
	FreeRatioChild int64
	FreeRatioElem  int64

	Meals  []MealOption
	Addons []AddonOption

	Channels []string
	PkgDesc  string

	// Дневной лимит посетителей, 0 = без ограничения
	MaxDailyPeople int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MealOption configured group meal with per-bracket prices
type MealOption struct {
	Name string `json:"name"`
	P1   int64  `json:"p1"` // цена для детсадовской группы
	P2   int64  `json:"p2"` // цена для начальной школы и сопровождающих
}

// AddonOption configured add-on experience
type AddonOption struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// FindMeal возвращает настройку питания по точному имени, nil если не найдена
func (c *FormConfig) FindMeal(name string) *MealOption {
	for i := range c.Meals {
		if c.Meals[i].Name == name {
			return &c.Meals[i]
		}
	}
	return nil
}

// AddonPriceMap возвращает карту "название доп. программы -> цена"
func (c *FormConfig) AddonPriceMap() map[string]int64 {
	m := make(map[string]int64, len(c.Addons))
	for _, a := range c.Addons {
		m[a.Name] = a.Price
	}
	return m
}

// DefaultFormConfig возвращает конфигурацию по умолчанию для нового объекта
func DefaultFormConfig(facilityCode string) *FormConfig {
	return &FormConfig{
		FacilityCode:   facilityCode,
		EntryP1:        12000,
		EntryP2:        13000,
		EntryTea:       12000,
		FreeRatioChild: 10,
		FreeRatioElem:  10,
		Meals: []MealOption{
			{Name: "오디돈가스", P1: 8000, P2: 10000},
		},
		Addons: []AddonOption{
			{Name: "젤캔들", Price: 10000},
			{Name: "먹이주기", Price: 2000},
			{Name: "가이드(50인↑)", Price: 2000},
		},
		Channels: []string{"문자", "이메일", "우편물", "사이트"},
		PkgDesc:  "기본입장: 잠사박물관·양떼목장·사계절썰매장·키즈카페",
	}
}

package models

import (
	"time"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
)

// MealOption настройка группового питания
type MealOption struct {
	Name string `json:"name"`
	P1   int64  `json:"p1"`
	P2   int64  `json:"p2"`
}

// AddonOption настройка дополнительной программы
type AddonOption struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// UpdateConfigRequest запрос на обновление конфигурации объекта
type UpdateConfigRequest struct {
	EntryP1        int64         `json:"entryP1"`
	EntryP2        int64         `json:"entryP2"`
	EntryTea       int64         `json:"entryTea"`
	FreeRatioChild int64         `json:"freeRatioChild"`
	FreeRatioElem  int64         `json:"freeRatioElem"`
	Meals          []MealOption  `json:"meals"`
	Addons         []AddonOption `json:"addons"`
	Channels       []string      `json:"channels"`
	PkgDesc        string        `json:"pkgDesc"`
	MaxDailyPeople int64         `json:"maxDailyPeople"`
}

// ToDomain преобразует запрос в доменную конфигурацию
func (r *UpdateConfigRequest) ToDomain(facilityCode string) *domain.FormConfig {
	cfg := &domain.FormConfig{
		FacilityCode:   facilityCode,
		EntryP1:        r.EntryP1,
		EntryP2:        r.EntryP2,
		EntryTea:       r.EntryTea,
		FreeRatioChild: r.FreeRatioChild,
		FreeRatioElem:  r.FreeRatioElem,
		Channels:       r.Channels,
		PkgDesc:        r.PkgDesc,
		MaxDailyPeople: r.MaxDailyPeople,
	}
	for _, m := range r.Meals {
		cfg.Meals = append(cfg.Meals, domain.MealOption{Name: m.Name, P1: m.P1, P2: m.P2})
	}
	for _, a := range r.Addons {
		cfg.Addons = append(cfg.Addons, domain.AddonOption{Name: a.Name, Price: a.Price})
	}
	return cfg
}

// ConfigResponse конфигурация объекта в ответ клиенту
type ConfigResponse struct {
	FacilityCode   string        `json:"facilityCode"`
	EntryP1        int64         `json:"entryP1"`
	EntryP2        int64         `json:"entryP2"`
	EntryTea       int64         `json:"entryTea"`
	FreeRatioChild int64         `json:"freeRatioChild"`
	FreeRatioElem  int64         `json:"freeRatioElem"`
	Meals          []MealOption  `json:"meals"`
	Addons         []AddonOption `json:"addons"`
	Channels       []string      `json:"channels"`
	PkgDesc        string        `json:"pkgDesc"`
	MaxDailyPeople int64         `json:"maxDailyPeople"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// FromDomain преобразует доменную конфигурацию в ответ
func FromDomain(cfg *domain.FormConfig) *ConfigResponse {
	resp := &ConfigResponse{
		FacilityCode:   cfg.FacilityCode,
		EntryP1:        cfg.EntryP1,
		EntryP2:        cfg.EntryP2,
		EntryTea:       cfg.EntryTea,
		FreeRatioChild: cfg.FreeRatioChild,
		FreeRatioElem:  cfg.FreeRatioElem,
		Meals:          make([]MealOption, 0, len(cfg.Meals)),
		Addons:         make([]AddonOption, 0, len(cfg.Addons)),
		Channels:       cfg.Channels,
		PkgDesc:        cfg.PkgDesc,
		MaxDailyPeople: cfg.MaxDailyPeople,
		CreatedAt:      cfg.CreatedAt,
		UpdatedAt:      cfg.UpdatedAt,
	}
	for _, m := range cfg.Meals {
		resp.Meals = append(resp.Meals, MealOption{Name: m.Name, P1: m.P1, P2: m.P2})
	}
	for _, a := range cfg.Addons {
		resp.Addons = append(resp.Addons, AddonOption{Name: a.Name, Price: a.Price})
	}
	return resp
}

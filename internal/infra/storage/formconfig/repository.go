package formconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/pkg/psqlbuilder"
	"github.com/jspark-dev/JSM-ReservationService/pkg/txmanager"
)

// Repository репозиторий для работы с конфигурацией цен объекта
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFacility получает конфигурацию объекта
func (r *Repository) GetByFacility(ctx context.Context, facilityCode string) (*domain.FormConfig, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"facility_code",
		"entry_p1",
		"entry_p2",
		"entry_tea",
		"free_ratio_child",
		"free_ratio_elem",
		"meals",
		"addons",
		"channels",
		"pkg_desc",
		"max_daily_people",
		"created_at",
		"updated_at",
	).
		From("form_config").
		Where(squirrel.Eq{"facility_code": facilityCode}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.FormConfig
	var mealsRaw, addonsRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.FacilityCode,
		&cfg.EntryP1,
		&cfg.EntryP2,
		&cfg.EntryTea,
		&cfg.FreeRatioChild,
		&cfg.FreeRatioElem,
		&mealsRaw,
		&addonsRaw,
		pq.Array(&cfg.Channels),
		&cfg.PkgDesc,
		&cfg.MaxDailyPeople,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - scan config: %v", ErrScanRow, err)
	}

	if len(mealsRaw) > 0 {
		if err := json.Unmarshal(mealsRaw, &cfg.Meals); err != nil {
			return nil, fmt.Errorf("%w: meals: %v", ErrScanRow, err)
		}
	}
	if len(addonsRaw) > 0 {
		if err := json.Unmarshal(addonsRaw, &cfg.Addons); err != nil {
			return nil, fmt.Errorf("%w: addons: %v", ErrScanRow, err)
		}
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Upsert создает или обновляет конфигурацию объекта
func (r *Repository) Upsert(ctx context.Context, cfg *domain.FormConfig) (*domain.FormConfig, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	mealsRaw, err := json.Marshal(cfg.Meals)
	if err != nil {
		return nil, fmt.Errorf("%w: meals: %v", ErrMarshal, err)
	}
	addonsRaw, err := json.Marshal(cfg.Addons)
	if err != nil {
		return nil, fmt.Errorf("%w: addons: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert("form_config").
		Columns(
			"facility_code",
			"entry_p1",
			"entry_p2",
			"entry_tea",
			"free_ratio_child",
			"free_ratio_elem",
			"meals",
			"addons",
			"channels",
			"pkg_desc",
			"max_daily_people",
		).
		Values(
			cfg.FacilityCode,
			cfg.EntryP1,
			cfg.EntryP2,
			cfg.EntryTea,
			cfg.FreeRatioChild,
			cfg.FreeRatioElem,
			mealsRaw,
			addonsRaw,
			pq.Array(cfg.Channels),
			cfg.PkgDesc,
			cfg.MaxDailyPeople,
		).
		Suffix(`ON CONFLICT (facility_code) DO UPDATE SET
			entry_p1 = EXCLUDED.entry_p1,
			entry_p2 = EXCLUDED.entry_p2,
			entry_tea = EXCLUDED.entry_tea,
			free_ratio_child = EXCLUDED.free_ratio_child,
			free_ratio_elem = EXCLUDED.free_ratio_elem,
			meals = EXCLUDED.meals,
			addons = EXCLUDED.addons,
			channels = EXCLUDED.channels,
			pkg_desc = EXCLUDED.pkg_desc,
			max_daily_people = EXCLUDED.max_daily_people,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute query: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

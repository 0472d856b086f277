package agency

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/pkg/psqlbuilder"
	"github.com/jspark-dev/JSM-ReservationService/pkg/txmanager"
)

// Repository репозиторий для работы с агентствами-посредниками
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория агентств
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает агентство по коду
func (r *Repository) GetByCode(ctx context.Context, facilityCode, code string) (*domain.Agency, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"code",
		"facility_code",
		"name",
		"contact",
		"fee",
		"active",
	).
		From("agencies").
		Where(squirrel.Eq{"facility_code": facilityCode, "code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Agency
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.Code,
		&a.FacilityCode,
		&a.Name,
		&a.Contact,
		&a.Fee,
		&a.Active,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAgencyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan agency: %v", ErrScanRow, err)
	}

	return &a, nil
}

// ListByFacility возвращает все агентства объекта
func (r *Repository) ListByFacility(ctx context.Context, facilityCode string) ([]*domain.Agency, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"code",
		"facility_code",
		"name",
		"contact",
		"fee",
		"active",
	).
		From("agencies").
		Where(squirrel.Eq{"facility_code": facilityCode}).
		OrderBy("code ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByFacility - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFacility - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	agencies := make([]*domain.Agency, 0)
	for rows.Next() {
		var a domain.Agency
		if err := rows.Scan(&a.Code, &a.FacilityCode, &a.Name, &a.Contact, &a.Fee, &a.Active); err != nil {
			return nil, fmt.Errorf("%w: ListByFacility - scan row: %v", ErrScanRow, err)
		}
		agencies = append(agencies, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByFacility - rows error: %v", ErrScanRow, err)
	}

	return agencies, nil
}

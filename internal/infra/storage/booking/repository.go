package booking

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

// bookingColumns полный список колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"facility_code",
	"date",
	"name",
	"phone",
	"arrival",
	"departure",
	"students",
	"teachers",
	"students_child",
	"students_elem",
	"age_group",
	"course_type",
	"meal",
	"addons",
	"status",
	"etc",
	"agency",
	"agency_name",
	"channel",
	"category",
	"paid_amount",
	"actual_students",
	"actual_teachers",
	"actual_students_child",
	"actual_students_elem",
	"actual_meal",
	"actual_addon_qty",
	"actual_meal_qty",
	"actual_entry_prices",
	"created",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	addonQty, mealQty, entryPrices, err := marshalActuals(b)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"facility_code",
			"date",
			"name",
			"phone",
			"arrival",
			"departure",
			"students",
			"teachers",
			"students_child",
			"students_elem",
			"age_group",
			"course_type",
			"meal",
			"addons",
			"status",
			"etc",
			"agency",
			"agency_name",
			"channel",
			"category",
			"paid_amount",
			"actual_students",
			"actual_teachers",
			"actual_students_child",
			"actual_students_elem",
			"actual_meal",
			"actual_addon_qty",
			"actual_meal_qty",
			"actual_entry_prices",
			"created",
		).
		Values(
			b.FacilityCode,
			b.Date,
			b.Name,
			b.Phone,
			b.Arrival,
			b.Departure,
			b.Students,
			b.Teachers,
			b.StudentsChild,
			b.StudentsElem,
			b.AgeGroup,
			b.CourseType,
			b.Meal,
			pq.Array(b.Addons),
			b.Status,
			b.Etc,
			b.Agency,
			b.AgencyName,
			b.Channel,
			b.Category,
			b.PaidAmount,
			b.ActualStudents,
			b.ActualTeachers,
			b.ActualStudentsChild,
			b.ActualStudentsElem,
			b.ActualMeal,
			addonQty,
			mealQty,
			entryPrices,
			b.Created,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// GetByFacilityWithFilter получает бронирования объекта с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Конкретной дате (Date) - опционально
// - Месяцу (Month, формат "2006-01") - опционально
// - Статусу (Status) - опционально
// - Коду агентства (Agency) - опционально
// - Включению отмененных бронирований (IncludeInactive)
func (r *Repository) GetByFacilityWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"facility_code": filter.FacilityCode})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.Month != nil {
		selectBuilder = selectBuilder.Where(squirrel.Like{"date": *filter.Month + "%"})
	}
	if filter.Agency != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"agency": *filter.Agency})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны отмененные - исключаем их
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	// Для конкретной даты сортируем по времени прибытия,
	// для периода - сначала новые
	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("arrival ASC, id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date DESC, arrival DESC")
	}

	// Внутри транзакции блокируем строки дня - для проверки дневного лимита
	// при создании бронирования
	if txmanager.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateActuals записывает фактические данные после визита
// Все фактические поля заменяются переданными значениями целиком
func (r *Repository) UpdateActuals(ctx context.Context, id int64, actuals domain.ActualsUpdate) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	addonQty, err := marshalJSON(actuals.ActualAddonQty)
	if err != nil {
		return err
	}
	mealQty, err := marshalJSON(actuals.ActualMealQty)
	if err != nil {
		return err
	}
	entryPrices, err := marshalJSON(actuals.ActualEntryPrices)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("actual_students", actuals.ActualStudents).
		Set("actual_teachers", actuals.ActualTeachers).
		Set("actual_students_child", actuals.ActualStudentsChild).
		Set("actual_students_elem", actuals.ActualStudentsElem).
		Set("actual_meal", actuals.ActualMeal).
		Set("actual_addon_qty", addonQty).
		Set("actual_meal_qty", mealQty).
		Set("actual_entry_prices", entryPrices).
		Set("paid_amount", actuals.PaidAmount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateActuals - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateActuals - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateActuals - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление, использовать осторожно)
// Для сохранения истории рекомендуется перевод в статус "취소"
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime
		var addonQtyRaw, mealQtyRaw, entryPricesRaw []byte

		err := rows.Scan(
			&b.ID,
			&b.FacilityCode,
			&b.Date,
			&b.Name,
			&b.Phone,
			&b.Arrival,
			&b.Departure,
			&b.Students,
			&b.Teachers,
			&b.StudentsChild,
			&b.StudentsElem,
			&b.AgeGroup,
			&b.CourseType,
			&b.Meal,
			pq.Array(&b.Addons),
			&b.Status,
			&b.Etc,
			&b.Agency,
			&b.AgencyName,
			&b.Channel,
			&b.Category,
			&b.PaidAmount,
			&b.ActualStudents,
			&b.ActualTeachers,
			&b.ActualStudentsChild,
			&b.ActualStudentsElem,
			&b.ActualMeal,
			&addonQtyRaw,
			&mealQtyRaw,
			&entryPricesRaw,
			&b.Created,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if err := unmarshalActuals(&b, addonQtyRaw, mealQtyRaw, entryPricesRaw); err != nil {
			return nil, err
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// marshalActuals сериализует JSONB поля бронирования для записи
func marshalActuals(b *domain.Booking) (addonQty, mealQty, entryPrices interface{}, err error) {
	addonQty, err = marshalJSON(b.ActualAddonQty)
	if err != nil {
		return nil, nil, nil, err
	}
	mealQty, err = marshalJSON(b.ActualMealQty)
	if err != nil {
		return nil, nil, nil, err
	}
	entryPrices, err = marshalJSON(b.ActualEntryPrices)
	if err != nil {
		return nil, nil, nil, err
	}
	return addonQty, mealQty, entryPrices, nil
}

// marshalJSON сериализует значение в JSONB, nil значения пишутся как NULL
func marshalJSON(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case []domain.AddonQty:
		if len(val) == 0 {
			return nil, nil
		}
	case *domain.MealQty:
		if val == nil {
			return nil, nil
		}
	case *domain.EntryPrices:
		if val == nil {
			return nil, nil
		}
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshal, err)
	}
	return raw, nil
}

// unmarshalActuals десериализует JSONB поля бронирования после чтения
func unmarshalActuals(b *domain.Booking, addonQtyRaw, mealQtyRaw, entryPricesRaw []byte) error {
	if len(addonQtyRaw) > 0 {
		if err := json.Unmarshal(addonQtyRaw, &b.ActualAddonQty); err != nil {
			return fmt.Errorf("%w: actual_addon_qty: %v", ErrScanRow, err)
		}
	}
	if len(mealQtyRaw) > 0 {
		if err := json.Unmarshal(mealQtyRaw, &b.ActualMealQty); err != nil {
			return fmt.Errorf("%w: actual_meal_qty: %v", ErrScanRow, err)
		}
	}
	if len(entryPricesRaw) > 0 {
		if err := json.Unmarshal(entryPricesRaw, &b.ActualEntryPrices); err != nil {
			return fmt.Errorf("%w: actual_entry_prices: %v", ErrScanRow, err)
		}
	}
	return nil
}

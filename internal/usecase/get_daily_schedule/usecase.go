package get_daily_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	"github.com/jspark-dev/JSM-ReservationService/pkg/ptr"
)

// UseCase use case для построения расписания дня
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute строит сетку расписания на указанную дату
// Сетка вычисляется заново на каждый запрос из снимка бронирований дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDailySchedule: facility=%s, date=%s", req.FacilityCode, req.Date)

	// 1. Валидация входных данных
	if req.FacilityCode == "" {
		return nil, fmt.Errorf("%w: facilityCode is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		uc.logger.Warn("GetDailySchedule: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: date must be formatted as 2006-01-02", ErrInvalidInput)
	}

	// 2. Получаем активные бронирования дня (отмененные отфильтрованы репозиторием)
	bookings, err := uc.bookingRepo.GetByFacilityWithFilter(ctx, domain.BookingsFilter{
		FacilityCode: req.FacilityCode,
		Date:         ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("GetDailySchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Раскладываем по дорожкам
	lanes := domain.DefaultActivities
	slots := domain.GenerateTimeSlots()
	grid, unplaced := placeBookings(lanes, slots, bookings)

	if len(unplaced) > 0 {
		uc.logger.Warn("GetDailySchedule: %d bookings could not be placed on %s",
			len(unplaced), req.Date)
	}

	return toResponse(req.Date, lanes, slots, grid, unplaced), nil
}

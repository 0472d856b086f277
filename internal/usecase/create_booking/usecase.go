package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	configRepo "github.com/jspark-dev/JSM-ReservationService/internal/infra/storage/formconfig"
	"github.com/jspark-dev/JSM-ReservationService/internal/integrations/notify"
	"github.com/jspark-dev/JSM-ReservationService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	notifyClient NotifyClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		notifyClient: notifyClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
// при проверке дневного лимита посетителей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: facility=%s, date=%s, name=%s, people=%d",
		req.FacilityCode, req.Date, req.Name, req.Students+req.Teachers)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата визита не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем конфигурацию объекта
		cfg, err := uc.configRepo.GetByFacility(txCtx, req.FacilityCode)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateBooking: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		if cfg == nil {
			cfg = domain.DefaultFormConfig(req.FacilityCode)
			uc.logger.Info("CreateBooking: using default config for facility=%s", req.FacilityCode)
		}

		// 4.2. Проверяем дневной лимит посетителей
		// Активные бронирования этого дня читаются с блокировкой (FOR UPDATE)
		if cfg.MaxDailyPeople > 0 {
			bookings, err := uc.bookingRepo.GetByFacilityWithFilter(txCtx, domain.BookingsFilter{
				FacilityCode: req.FacilityCode,
				Date:         ptr.Ptr(req.Date),
			})
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get day bookings: %v", err)
				return fmt.Errorf("%w: failed to get day bookings: %v", ErrInternal, err)
			}

			taken := dayHeadcount(bookings)
			if taken+req.Students+req.Teachers > cfg.MaxDailyPeople {
				uc.logger.Warn("CreateBooking: capacity exceeded for %s: %d/%d taken, requested %d",
					req.Date, taken, cfg.MaxDailyPeople, req.Students+req.Teachers)
				return ErrCapacityExceeded
			}
		}

		// 4.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, req.toDomainBooking(now.Format(domain.DateFormat)))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 5. Уведомление о приеме заявки; сбой рассылки не ломает операцию
	if uc.notifyClient != nil && result.Phone != "" {
		_ = uc.notifyClient.SendWithGracefulDegradation(ctx, &notify.Message{
			Phone:        result.Phone,
			BookingID:    result.ID,
			BookingName:  result.Name,
			Date:         result.Date,
			Status:       string(result.Status),
			FacilityCode: result.FacilityCode,
		})
	}

	return toResponse(result), nil
}

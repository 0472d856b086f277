package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	bookingRepo "github.com/jspark-dev/JSM-ReservationService/internal/infra/storage/booking"
	configRepo "github.com/jspark-dev/JSM-ReservationService/internal/infra/storage/formconfig"
	"github.com/jspark-dev/JSM-ReservationService/internal/integrations/notify"
	"github.com/jspark-dev/JSM-ReservationService/internal/pricing"
	"github.com/jspark-dev/JSM-ReservationService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	notifyClient NotifyClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// notifyClient может быть nil, если рассылка уведомлений выключена
func NewService(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	notifyClient NotifyClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		notifyClient: notifyClient,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetFacilityBookings получает бронирования объекта с гибкой фильтрацией
// Поддерживает фильтрацию по дате, месяцу, статусу, агентству
// и включению отмененных бронирований
func (s *Service) GetFacilityBookings(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetFacilityBookings: facility=%s, date=%v, month=%v, status=%v",
		req.FacilityCode, req.Date, req.Month, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFacilityBookings: invalid filter for facility=%s: %v", req.FacilityCode, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFacilityBookings: repository error for facility=%s: %v", req.FacilityCode, err)
		return nil, fmt.Errorf("%w: GetFacilityBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFacilityBookings: fetched %d bookings for facility=%s", len(bookings), req.FacilityCode)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус
// Статус "취소" терминальный: отмененное бронирование менять нельзя
// При успешной смене статуса отправляется уведомление (fire-and-forget)
func (s *Service) UpdateStatus(ctx context.Context, id int64, statusStr string) error {
	s.logger.Info("UpdateStatus: booking id=%d, new status=%s", id, statusStr)

	status, err := models.ToDomainBookingStatus(statusStr)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", statusStr, id)
		return ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if booking.Status == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: booking id=%d is cancelled, status change rejected", id)
		return ErrStatusTerminal
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: failed to update booking id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d moved %s -> %s", id, booking.Status, status)

	// Уведомление не должно ломать основную операцию
	if s.notifyClient != nil && booking.Phone != "" {
		_ = s.notifyClient.SendWithGracefulDegradation(ctx, &notify.Message{
			Phone:        booking.Phone,
			BookingID:    booking.ID,
			BookingName:  booking.Name,
			Date:         booking.Date,
			Status:       string(status),
			FacilityCode: booking.FacilityCode,
		})
	}

	return nil
}

// RecordActuals записывает фактические данные после визита
// Сверка применяется целиком: каждое поле платежа заменяет прежнее значение
func (s *Service) RecordActuals(ctx context.Context, id int64, req *models.ActualsRequest) error {
	s.logger.Info("RecordActuals: booking id=%d", id)

	if req.ActualStudents == nil {
		// Маркер сверки - фактическое число детей; без него запись бессмысленна
		s.logger.Warn("RecordActuals: booking id=%d - actualStudents is required", id)
		return fmt.Errorf("%w: actualStudents is required", ErrInvalidInput)
	}
	if *req.ActualStudents < 0 {
		return fmt.Errorf("%w: actualStudents must not be negative", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateActuals(ctx, id, req.ToDomainActuals()); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("RecordActuals: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("RecordActuals: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: RecordActuals - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RecordActuals: booking id=%d reconciled", id)
	return nil
}

// Delete физически удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}

// Quote рассчитывает смету бронирования по актуальной конфигурации цен
// Смета - производное значение: пересчитывается на каждый запрос и не хранится
func (s *Service) Quote(ctx context.Context, id int64) (*models.QuoteResponse, error) {
	s.logger.Info("Quote: calculating quote for booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Quote: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Quote: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Quote - repository error: %v", ErrInternal, err)
	}

	cfg, err := s.configRepo.GetByFacility(ctx, booking.FacilityCode)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Error("Quote: failed to get config for facility=%s: %v", booking.FacilityCode, err)
			return nil, fmt.Errorf("%w: Quote - config error: %v", ErrInternal, err)
		}
		// Конфигурация не настроена - используем значения по умолчанию
		cfg = domain.DefaultFormConfig(booking.FacilityCode)
		s.logger.Info("Quote: using default config for facility=%s", booking.FacilityCode)
	}

	quote := pricing.CalcQuote(booking, cfg)

	return &models.QuoteResponse{
		BookingID:  booking.ID,
		Items:      quote.Items,
		GrandTotal: quote.GrandTotal,
	}, nil
}

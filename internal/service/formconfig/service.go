package formconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	configRepo "github.com/jspark-dev/JSM-ReservationService/internal/infra/storage/formconfig"
	"github.com/jspark-dev/JSM-ReservationService/internal/service/formconfig/models"
)

// Service сервис конфигурации цен объекта
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get возвращает конфигурацию объекта
// Если конфигурация еще не сохранялась, возвращается набор значений
// по умолчанию, чтобы форма и смета работали с первого дня
func (s *Service) Get(ctx context.Context, facilityCode string) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching config for facility=%s", facilityCode)

	cfg, err := s.configRepo.GetByFacility(ctx, facilityCode)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Error("Get: repository error for facility=%s: %v", facilityCode, err)
			return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("Get: no stored config for facility=%s, using defaults", facilityCode)
		cfg = domain.DefaultFormConfig(facilityCode)
	}

	return models.FromDomain(cfg), nil
}

// Update сохраняет конфигурацию объекта целиком (upsert)
func (s *Service) Update(ctx context.Context, facilityCode string, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: saving config for facility=%s", facilityCode)

	if err := validateConfig(req); err != nil {
		s.logger.Warn("Update: invalid config for facility=%s: %v", facilityCode, err)
		return nil, err
	}

	saved, err := s.configRepo.Upsert(ctx, req.ToDomain(facilityCode))
	if err != nil {
		s.logger.Error("Update: repository error for facility=%s: %v", facilityCode, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: config saved for facility=%s", facilityCode)
	return models.FromDomain(saved), nil
}

func validateConfig(req *models.UpdateConfigRequest) error {
	if req.EntryP1 < 0 || req.EntryP2 < 0 || req.EntryTea < 0 {
		return fmt.Errorf("%w: entry prices must not be negative", ErrInvalidInput)
	}
	if req.FreeRatioChild < 0 || req.FreeRatioElem < 0 {
		return fmt.Errorf("%w: free chaperone ratios must not be negative", ErrInvalidInput)
	}
	if req.MaxDailyPeople < 0 {
		return fmt.Errorf("%w: maxDailyPeople must not be negative", ErrInvalidInput)
	}
	for _, m := range req.Meals {
		if m.Name == "" {
			return fmt.Errorf("%w: meal name must not be empty", ErrInvalidInput)
		}
		if m.P1 < 0 || m.P2 < 0 {
			return fmt.Errorf("%w: meal prices must not be negative", ErrInvalidInput)
		}
	}
	for _, a := range req.Addons {
		if a.Name == "" {
			return fmt.Errorf("%w: addon name must not be empty", ErrInvalidInput)
		}
		if a.Price < 0 {
			return fmt.Errorf("%w: addon price must not be negative", ErrInvalidInput)
		}
	}
	return nil
}

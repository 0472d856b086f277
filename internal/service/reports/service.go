package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jspark-dev/JSM-ReservationService/internal/domain"
	agencyRepo "github.com/jspark-dev/JSM-ReservationService/internal/infra/storage/agency"
	configRepo "github.com/jspark-dev/JSM-ReservationService/internal/infra/storage/formconfig"
	"github.com/jspark-dev/JSM-ReservationService/internal/pricing"
	"github.com/jspark-dev/JSM-ReservationService/internal/service/reports/models"
	"github.com/jspark-dev/JSM-ReservationService/pkg/ptr"
)

const (
	periodDay   = "day"
	periodWeek  = "week"
	periodMonth = "month"
)

// Service сервис отчетов и сводных показателей
type Service struct {
	bookingRepo BookingRepository
	configRepo  ConfigRepository
	agencyRepo  AgencyRepository
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	agencyRepo AgencyRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		configRepo:  configRepo,
		agencyRepo:  agencyRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// facilityConfig загружает конфигурацию цен с запасным вариантом по умолчанию
func (s *Service) facilityConfig(ctx context.Context, facilityCode string) (*domain.FormConfig, error) {
	cfg, err := s.configRepo.GetByFacility(ctx, facilityCode)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			return nil, err
		}
		cfg = domain.DefaultFormConfig(facilityCode)
	}
	return cfg, nil
}

// Dashboard считает карточки дня, месяца и аналитические показатели
func (s *Service) Dashboard(ctx context.Context, facilityCode string) (*models.DashboardResponse, error) {
	s.logger.Info("Dashboard: facility=%s", facilityCode)

	cfg, err := s.facilityConfig(ctx, facilityCode)
	if err != nil {
		s.logger.Error("Dashboard: config error for facility=%s: %v", facilityCode, err)
		return nil, fmt.Errorf("%w: Dashboard - config error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByFacilityWithFilter(ctx, domain.BookingsFilter{
		FacilityCode:    facilityCode,
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("Dashboard: repository error for facility=%s: %v", facilityCode, err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	now := s.now()
	day, month := dashboardCards(bookings, cfg, now)
	return &models.DashboardResponse{
		Today:   day,
		Month:   month,
		Insight: insightCard(bookings, cfg, now),
	}, nil
}

// RevenueStats строит ряд выручки по периодам за последние rangeMonths месяцев
func (s *Service) RevenueStats(ctx context.Context, facilityCode, period string, rangeMonths int) (*models.RevenueStatsResponse, error) {
	s.logger.Info("RevenueStats: facility=%s, period=%s, range=%d", facilityCode, period, rangeMonths)

	switch period {
	case periodDay, periodWeek, periodMonth:
	default:
		return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, period)
	}
	if rangeMonths <= 0 {
		rangeMonths = 6
	}

	cfg, err := s.facilityConfig(ctx, facilityCode)
	if err != nil {
		s.logger.Error("RevenueStats: config error for facility=%s: %v", facilityCode, err)
		return nil, fmt.Errorf("%w: RevenueStats - config error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByFacilityWithFilter(ctx, domain.BookingsFilter{
		FacilityCode: facilityCode,
	})
	if err != nil {
		s.logger.Error("RevenueStats: repository error for facility=%s: %v", facilityCode, err)
		return nil, fmt.Errorf("%w: RevenueStats - repository error: %v", ErrInternal, err)
	}

	// Ряд ограничивается окном последних rangeMonths месяцев
	cutoff := s.now().AddDate(0, -rangeMonths, 0).Format(domain.DateFormat)
	inRange := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Date >= cutoff {
			inRange = append(inRange, b)
		}
	}

	return &models.RevenueStatsResponse{
		Period:  period,
		Buckets: revenueSeries(inRange, cfg, period),
	}, nil
}

// CategoryStats считает доли по категориям за текущий месяц
func (s *Service) CategoryStats(ctx context.Context, facilityCode string) (*models.CategoryStatsResponse, error) {
	s.logger.Info("CategoryStats: facility=%s", facilityCode)

	cfg, err := s.facilityConfig(ctx, facilityCode)
	if err != nil {
		s.logger.Error("CategoryStats: config error for facility=%s: %v", facilityCode, err)
		return nil, fmt.Errorf("%w: CategoryStats - config error: %v", ErrInternal, err)
	}

	month := s.now().Format(domain.MonthFormat)
	bookings, err := s.bookingRepo.GetByFacilityWithFilter(ctx, domain.BookingsFilter{
		FacilityCode: facilityCode,
		Month:        ptr.Ptr(month),
	})
	if err != nil {
		s.logger.Error("CategoryStats: repository error for facility=%s: %v", facilityCode, err)
		return nil, fmt.Errorf("%w: CategoryStats - repository error: %v", ErrInternal, err)
	}

	return &models.CategoryStatsResponse{
		Categories: categoryShares(bookings, cfg),
	}, nil
}

// WeeklyOverview собирает обзор недели со сдвигом offset от текущей
func (s *Service) WeeklyOverview(ctx context.Context, facilityCode string, offset int) (*models.WeeklyOverviewResponse, error) {
	s.logger.Info("WeeklyOverview: facility=%s, offset=%d", facilityCode, offset)

	cfg, err := s.facilityConfig(ctx, facilityCode)
	if err != nil {
		s.logger.Error("WeeklyOverview: config error for facility=%s: %v", facilityCode, err)
		return nil, fmt.Errorf("%w: WeeklyOverview - config error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByFacilityWithFilter(ctx, domain.BookingsFilter{
		FacilityCode: facilityCode,
	})
	if err != nil {
		s.logger.Error("WeeklyOverview: repository error for facility=%s: %v", facilityCode, err)
		return nil, fmt.Errorf("%w: WeeklyOverview - repository error: %v", ErrInternal, err)
	}

	return weeklyOverview(bookings, cfg, s.now(), offset), nil
}

// AgencyReport строит отчет по агентству за месяц
func (s *Service) AgencyReport(ctx context.Context, facilityCode, agencyCode, month string) (*models.AgencyReportResponse, error) {
	s.logger.Info("AgencyReport: facility=%s, agency=%s, month=%s", facilityCode, agencyCode, month)

	if _, err := time.Parse(domain.MonthFormat, month); err != nil {
		return nil, fmt.Errorf("%w: month must be formatted as 2006-01", ErrInvalidInput)
	}

	agency, err := s.agencyRepo.GetByCode(ctx, facilityCode, agencyCode)
	if err != nil {
		if errors.Is(err, agencyRepo.ErrAgencyNotFound) {
			s.logger.Warn("AgencyReport: agency=%s not found for facility=%s", agencyCode, facilityCode)
			return nil, ErrAgencyNotFound
		}
		s.logger.Error("AgencyReport: repository error for agency=%s: %v", agencyCode, err)
		return nil, fmt.Errorf("%w: AgencyReport - repository error: %v", ErrInternal, err)
	}

	cfg, err := s.facilityConfig(ctx, facilityCode)
	if err != nil {
		s.logger.Error("AgencyReport: config error for facility=%s: %v", facilityCode, err)
		return nil, fmt.Errorf("%w: AgencyReport - config error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByFacilityWithFilter(ctx, domain.BookingsFilter{
		FacilityCode: facilityCode,
		Month:        ptr.Ptr(month),
		Agency:       ptr.Ptr(agencyCode),
	})
	if err != nil {
		s.logger.Error("AgencyReport: repository error for agency=%s: %v", agencyCode, err)
		return nil, fmt.Errorf("%w: AgencyReport - repository error: %v", ErrInternal, err)
	}

	resp := &models.AgencyReportResponse{
		AgencyCode: agency.Code,
		AgencyName: agency.Name,
		Month:      month,
		FeePct:     agency.Fee,
		Bookings:   make([]models.AgencyBookingItem, 0, len(bookings)),
	}
	for _, b := range bookings {
		est := pricing.Estimate(b, cfg)
		paid := paidOf(b)
		resp.TotalEstimate += est
		resp.TotalPaid += paid
		resp.TotalCount++
		resp.TotalPeople += b.TotalPeople()
		resp.Bookings = append(resp.Bookings, models.AgencyBookingItem{
			BookingID: b.ID,
			Date:      b.Date,
			Name:      b.Name,
			People:    b.TotalPeople(),
			Status:    string(b.Status),
			Estimate:  est,
			Paid:      paid,
		})
	}
	resp.FeeAmount = agency.FeeAmount(resp.TotalEstimate)

	return resp, nil
}

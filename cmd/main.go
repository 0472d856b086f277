package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/delete_booking"
	getAgencyReportHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/get_agency_report"
	getBookingHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/get_booking"
	getBookingQuoteHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/get_booking_quote"
	getBookingsHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/get_bookings"
	getCategoryStatsHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/get_category_stats"
	getDailyScheduleHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/get_daily_schedule"
	getDashboardHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/get_dashboard"
	getFormConfigHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/get_form_config"
	getRevenueStatsHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/get_revenue_stats"
	getWeeklyOverviewHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/get_weekly_overview"
	recordActualsHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/record_actuals"
	updateBookingStatusHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/update_booking_status"
	updateFormConfigHandler "github.com/jspark-dev/JSM-ReservationService/internal/api/handlers/update_form_config"
	"github.com/jspark-dev/JSM-ReservationService/internal/api/middleware"
	"github.com/jspark-dev/JSM-ReservationService/internal/config"
	agencyRepo "github.com/jspark-dev/JSM-ReservationService/internal/infra/storage/agency"
	bookingRepo "github.com/jspark-dev/JSM-ReservationService/internal/infra/storage/booking"
	formConfigRepo "github.com/jspark-dev/JSM-ReservationService/internal/infra/storage/formconfig"
	"github.com/jspark-dev/JSM-ReservationService/internal/integrations/notify"
	bookingsService "github.com/jspark-dev/JSM-ReservationService/internal/service/bookings"
	formConfigService "github.com/jspark-dev/JSM-ReservationService/internal/service/formconfig"
	reportsService "github.com/jspark-dev/JSM-ReservationService/internal/service/reports"
	createBookingUC "github.com/jspark-dev/JSM-ReservationService/internal/usecase/create_booking"
	getDailyScheduleUC "github.com/jspark-dev/JSM-ReservationService/internal/usecase/get_daily_schedule"
	"github.com/jspark-dev/JSM-ReservationService/pkg/logger"
	"github.com/jspark-dev/JSM-ReservationService/pkg/metrics"
	"github.com/jspark-dev/JSM-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting JSM-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем клиента сервиса уведомлений (если включен)
	var bookingNotify bookingsService.NotifyClient
	var createNotify createBookingUC.NotifyClient
	if cfg.Notify.Enabled {
		notifyClient := notify.NewClient(
			cfg.Notify.URL,
			time.Duration(cfg.Notify.Timeout)*time.Second,
			log,
		)
		bookingNotify = notifyClient
		createNotify = notifyClient
		log.Info("Notify client initialized (url=%s, timeout=%ds)", cfg.Notify.URL, cfg.Notify.Timeout)
	} else {
		log.Info("Notify client disabled")
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	formConfigRepository := formConfigRepo.NewRepository(db)
	agencyRepository := agencyRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		formConfigRepository,
		bookingNotify,
		log,
	)
	formConfigSvc := formConfigService.NewService(
		formConfigRepository,
		log,
	)
	reportsSvc := reportsService.NewService(
		bookingRepository,
		formConfigRepository,
		agencyRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		formConfigRepository,
		createNotify,
		txMgr,
		log,
	)
	getDailyScheduleUseCase := getDailyScheduleUC.NewUseCase(
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	recordActuals := recordActualsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getBookingQuote := getBookingQuoteHandler.NewHandler(bookingSvc, log)
	getDailySchedule := getDailyScheduleHandler.NewHandler(getDailyScheduleUseCase, log)
	getDashboard := getDashboardHandler.NewHandler(reportsSvc, log)
	getRevenueStats := getRevenueStatsHandler.NewHandler(reportsSvc, log)
	getCategoryStats := getCategoryStatsHandler.NewHandler(reportsSvc, log)
	getWeeklyOverview := getWeeklyOverviewHandler.NewHandler(reportsSvc, log)
	getFormConfig := getFormConfigHandler.NewHandler(formConfigSvc, log)
	updateFormConfig := updateFormConfigHandler.NewHandler(formConfigSvc, log)
	getAgencyReport := getAgencyReportHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Конфигурация формы бронирования (используется публичной формой)
	api.HandleFunc("/facilities/{facilityCode}/config",
		getFormConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/actuals", recordActuals.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/quote", getBookingQuote.Handle).Methods(http.MethodGet)

	// --- Объект ---
	protected.HandleFunc("/facilities/{facilityCode}/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/facilities/{facilityCode}/schedule", getDailySchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/facilities/{facilityCode}/config", updateFormConfig.Handle).Methods(http.MethodPut)

	// --- Отчеты ---
	protected.HandleFunc("/facilities/{facilityCode}/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/facilities/{facilityCode}/stats/revenue", getRevenueStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/facilities/{facilityCode}/stats/categories", getCategoryStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/facilities/{facilityCode}/stats/weekly", getWeeklyOverview.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/facilities/{facilityCode}/agencies/{agencyCode}/report", getAgencyReport.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

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

	cancelReservationHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/cancel_reservation"
	createAreaHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/create_area"
	createReservationHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/create_reservation"
	deleteAreaHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/delete_area"
	expandRecurrenceHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/expand_recurrence"
	getAreaHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/get_area"
	getAreaReservationsHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/get_area_reservations"
	getAreasHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/get_areas"
	getAvailableSlotsHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/get_available_slots"
	getDayAvailabilityHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/get_day_availability"
	getOfficeCalendarHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/get_office_calendar"
	getReservationHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/get_user_reservations"
	updateAreaHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/update_area"
	updateOfficeCalendarHandler "github.com/m04kA/CWS-ReservationService/internal/api/handlers/update_office_calendar"
	"github.com/m04kA/CWS-ReservationService/internal/api/middleware"
	"github.com/m04kA/CWS-ReservationService/internal/config"
	areaRepo "github.com/m04kA/CWS-ReservationService/internal/infra/storage/area"
	calendarRepo "github.com/m04kA/CWS-ReservationService/internal/infra/storage/calendar"
	reservationRepo "github.com/m04kA/CWS-ReservationService/internal/infra/storage/reservation"
	userServiceClient "github.com/m04kA/CWS-ReservationService/internal/integrations/userservice"
	areasService "github.com/m04kA/CWS-ReservationService/internal/service/areas"
	calendarService "github.com/m04kA/CWS-ReservationService/internal/service/calendar"
	reservationsService "github.com/m04kA/CWS-ReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/CWS-ReservationService/internal/usecase/create_reservation"
	expandRecurrenceUC "github.com/m04kA/CWS-ReservationService/internal/usecase/expand_recurrence"
	getAvailableSlotsUC "github.com/m04kA/CWS-ReservationService/internal/usecase/get_available_slots"
	getDayAvailabilityUC "github.com/m04kA/CWS-ReservationService/internal/usecase/get_day_availability"
	"github.com/m04kA/CWS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/CWS-ReservationService/pkg/logger"
	"github.com/m04kA/CWS-ReservationService/pkg/metrics"
	"github.com/m04kA/CWS-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/CWS-ReservationService/pkg/txmanager"
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

	log.Info("Starting CWS-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционного клиента
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		areaRepository        *areaRepo.Repository
		calendarRepository    *calendarRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		areaRepository = areaRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		areaRepository = areaRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	areaSvc := areasService.NewService(areaRepository, log)
	calendarSvc := calendarService.NewService(calendarRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		areaRepository,
		calendarSvc,
		userClient,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		areaRepository,
		calendarSvc,
		log,
	)
	getDayAvailabilityUseCase := getDayAvailabilityUC.NewUseCase(
		reservationRepository,
		areaRepository,
		calendarSvc,
		log,
	)
	expandRecurrenceUseCase := expandRecurrenceUC.NewUseCase(
		reservationRepository,
		areaRepository,
		calendarSvc,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getAreaReservations := getAreaReservationsHandler.NewHandler(reservationSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDayAvailability := getDayAvailabilityHandler.NewHandler(getDayAvailabilityUseCase, log)
	expandRecurrence := expandRecurrenceHandler.NewHandler(expandRecurrenceUseCase, log)
	createArea := createAreaHandler.NewHandler(areaSvc, log)
	getAreas := getAreasHandler.NewHandler(areaSvc, log)
	getArea := getAreaHandler.NewHandler(areaSvc, log)
	updateArea := updateAreaHandler.NewHandler(areaSvc, log)
	deleteArea := deleteAreaHandler.NewHandler(areaSvc, log)
	getOfficeCalendar := getOfficeCalendarHandler.NewHandler(calendarSvc, log)
	updateOfficeCalendar := updateOfficeCalendarHandler.NewHandler(calendarSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Области и их доступность
	api.HandleFunc("/areas", getAreas.Handle).Methods(http.MethodGet)
	api.HandleFunc("/areas/{areaId}", getArea.Handle).Methods(http.MethodGet)
	api.HandleFunc("/areas/{areaId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/areas/{areaId}/availability", getDayAvailability.Handle).Methods(http.MethodGet)

	// Календарь офиса
	api.HandleFunc("/calendar", getOfficeCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/recurrence/preview", expandRecurrence.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Администрирование (для менеджеров офиса) ---
	protected.HandleFunc("/areas", createArea.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/areas/{areaId}", updateArea.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/areas/{areaId}", deleteArea.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/areas/{areaId}/reservations", getAreaReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/calendar", updateOfficeCalendar.Handle).Methods(http.MethodPut)

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

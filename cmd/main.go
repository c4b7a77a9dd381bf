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

	cancelBookingHandler "github.com/salonique/booking-service/internal/api/handlers/cancel_booking"
	createBlockerHandler "github.com/salonique/booking-service/internal/api/handlers/create_blocker"
	createBookingHandler "github.com/salonique/booking-service/internal/api/handlers/create_booking"
	deleteBlockerHandler "github.com/salonique/booking-service/internal/api/handlers/delete_blocker"
	getAvailableSlotsHandler "github.com/salonique/booking-service/internal/api/handlers/get_available_slots"
	getBlockersHandler "github.com/salonique/booking-service/internal/api/handlers/get_blockers"
	getBookingHandler "github.com/salonique/booking-service/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/salonique/booking-service/internal/api/handlers/get_calendar"
	getProfessionalBookingsHandler "github.com/salonique/booking-service/internal/api/handlers/get_professional_bookings"
	getScheduleHandler "github.com/salonique/booking-service/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/salonique/booking-service/internal/api/handlers/get_user_bookings"
	updateBookingStatusHandler "github.com/salonique/booking-service/internal/api/handlers/update_booking_status"
	updateScheduleDayHandler "github.com/salonique/booking-service/internal/api/handlers/update_schedule_day"
	"github.com/salonique/booking-service/internal/api/middleware"
	"github.com/salonique/booking-service/internal/config"
	blockerRepo "github.com/salonique/booking-service/internal/infra/storage/blocker"
	bookingRepo "github.com/salonique/booking-service/internal/infra/storage/booking"
	scheduleRepo "github.com/salonique/booking-service/internal/infra/storage/schedule"
	catalogServiceClient "github.com/salonique/booking-service/internal/integrations/catalogservice"
	availabilityService "github.com/salonique/booking-service/internal/service/availability"
	bookingsService "github.com/salonique/booking-service/internal/service/bookings"
	createBlockerUC "github.com/salonique/booking-service/internal/usecase/create_blocker"
	createBookingUC "github.com/salonique/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/salonique/booking-service/internal/usecase/get_available_slots"
	getCalendarUC "github.com/salonique/booking-service/internal/usecase/get_calendar"
	"github.com/salonique/booking-service/pkg/dbmetrics"
	"github.com/salonique/booking-service/pkg/logger"
	"github.com/salonique/booking-service/pkg/metrics"
	"github.com/salonique/booking-service/pkg/simpletxmanager"
	"github.com/salonique/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
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

	// Инициализируем клиента каталога
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog service client initialized (url=%s, timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		blockerRepository  *blockerRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		blockerRepository = blockerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		blockerRepository = blockerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalogClient,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		scheduleRepository,
		blockerRepository,
		catalogClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		blockerRepository,
		catalogClient,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		blockerRepository,
		catalogClient,
		log,
	)
	createBlockerUseCase := createBlockerUC.NewUseCase(
		blockerRepository,
		catalogClient,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		blockerRepository,
		catalogClient,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBlocker := createBlockerHandler.NewHandler(createBlockerUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getProfessionalBookings := getProfessionalBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(availabilitySvc, log)
	updateScheduleDay := updateScheduleDayHandler.NewHandler(availabilitySvc, log)
	getBlockers := getBlockersHandler.NewHandler(availabilitySvc, log)
	deleteBlocker := deleteBlockerHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты мастера на дату
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание мастера
	api.HandleFunc("/professionals/{professionalId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// Блокировки мастера за период
	api.HandleFunc("/professionals/{professionalId}/blockers",
		getBlockers.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи к мастеру
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса записи мастером
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Кабинет мастера ---
	// Записи мастера с фильтрами
	protected.HandleFunc("/professionals/{professionalId}/bookings", getProfessionalBookings.Handle).Methods(http.MethodGet)

	// Обновление дня расписания
	protected.HandleFunc("/schedule/{scheduleId}", updateScheduleDay.Handle).Methods(http.MethodPut)

	// Создание блокировок времени
	protected.HandleFunc("/blockers", createBlocker.Handle).Methods(http.MethodPost)

	// Удаление группы блокировок
	protected.HandleFunc("/blockers/{blockerId}", deleteBlocker.Handle).Methods(http.MethodDelete)

	// Календарная сетка (неделя или месяц)
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

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

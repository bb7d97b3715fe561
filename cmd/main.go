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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/mvlko/EventBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/mvlko/EventBookingService/internal/api/handlers/create_booking"
	createCategoryHandler "github.com/mvlko/EventBookingService/internal/api/handlers/create_category"
	createTimeslotHandler "github.com/mvlko/EventBookingService/internal/api/handlers/create_timeslot"
	deleteTimeslotHandler "github.com/mvlko/EventBookingService/internal/api/handlers/delete_timeslot"
	getCategoriesHandler "github.com/mvlko/EventBookingService/internal/api/handlers/get_categories"
	getPreferencesHandler "github.com/mvlko/EventBookingService/internal/api/handlers/get_preferences"
	getUserBookingsHandler "github.com/mvlko/EventBookingService/internal/api/handlers/get_user_bookings"
	getWeekSlotsHandler "github.com/mvlko/EventBookingService/internal/api/handlers/get_week_slots"
	updatePreferencesHandler "github.com/mvlko/EventBookingService/internal/api/handlers/update_preferences"
	"github.com/mvlko/EventBookingService/internal/api/middleware"
	"github.com/mvlko/EventBookingService/internal/config"
	"github.com/mvlko/EventBookingService/internal/domain"
	"github.com/mvlko/EventBookingService/internal/infra/cache/slotcache"
	bookingRepo "github.com/mvlko/EventBookingService/internal/infra/storage/booking"
	categoryRepo "github.com/mvlko/EventBookingService/internal/infra/storage/category"
	preferencesRepo "github.com/mvlko/EventBookingService/internal/infra/storage/preferences"
	timeslotRepo "github.com/mvlko/EventBookingService/internal/infra/storage/timeslot"
	authServiceClient "github.com/mvlko/EventBookingService/internal/integrations/authservice"
	bookingsService "github.com/mvlko/EventBookingService/internal/service/bookings"
	categoriesService "github.com/mvlko/EventBookingService/internal/service/categories"
	preferencesService "github.com/mvlko/EventBookingService/internal/service/preferences"
	timeslotsService "github.com/mvlko/EventBookingService/internal/service/timeslots"
	createBookingUC "github.com/mvlko/EventBookingService/internal/usecase/create_booking"
	createTimeslotUC "github.com/mvlko/EventBookingService/internal/usecase/create_timeslot"
	getWeekSlotsUC "github.com/mvlko/EventBookingService/internal/usecase/get_week_slots"
	"github.com/mvlko/EventBookingService/pkg/dbmetrics"
	"github.com/mvlko/EventBookingService/pkg/logger"
	"github.com/mvlko/EventBookingService/pkg/metrics"
	"github.com/mvlko/EventBookingService/pkg/simpletxmanager"
	"github.com/mvlko/EventBookingService/pkg/txmanager"
)

// TxManager интерфейс для управления транзакциями (используется в сервисах и usecases)
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotCache интерфейс кэша каталога слотов
type SlotCache interface {
	Get(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, bool)
	Set(ctx context.Context, filter domain.SlotFilter, slots []*domain.TimeSlot)
	Invalidate(ctx context.Context)
}

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

	log.Info("Starting EventBookingService...")
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

	// Инициализируем интеграционного клиента AuthService
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (AuthService=%s timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем кэш каталога слотов (если включен)
	var cache SlotCache = slotcache.Noop{}
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		cache = slotcache.New(redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second, log)
		log.Info("Slot catalog cache enabled (redis=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		categoryRepository    *categoryRepo.Repository
		preferencesRepository *preferencesRepo.Repository
		timeslotRepository    *timeslotRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		categoryRepository = categoryRepo.NewRepository(wrappedDB)
		preferencesRepository = preferencesRepo.NewRepository(wrappedDB)
		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		categoryRepository = categoryRepo.NewRepository(db)
		preferencesRepository = preferencesRepo.NewRepository(db)
		timeslotRepository = timeslotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, cache, log)
	categorySvc := categoriesService.NewService(categoryRepository, authClient, log)
	preferencesSvc := preferencesService.NewService(preferencesRepository, txMgr, log)
	timeslotSvc := timeslotsService.NewService(timeslotRepository, authClient, cache, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		timeslotRepository,
		bookingRepository,
		authClient,
		txMgr,
		cache,
		log,
	)

	createTimeslotUseCase := createTimeslotUC.NewUseCase(
		timeslotRepository,
		categoryRepository,
		authClient,
		cache,
		log,
	)

	getWeekSlotsUseCase := getWeekSlotsUC.NewUseCase(
		timeslotRepository,
		preferencesRepository,
		cache,
		log,
	)

	// Инициализируем handlers
	getCategories := getCategoriesHandler.NewHandler(categorySvc, log)
	createCategory := createCategoryHandler.NewHandler(categorySvc, log)
	getWeekSlots := getWeekSlotsHandler.NewHandler(getWeekSlotsUseCase, log)
	createTimeslot := createTimeslotHandler.NewHandler(createTimeslotUseCase, log)
	deleteTimeslot := deleteTimeslotHandler.NewHandler(timeslotSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getPreferences := getPreferencesHandler.NewHandler(preferencesSvc, log)
	updatePreferences := updatePreferencesHandler.NewHandler(preferencesSvc, log)

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

	// Список категорий событий
	api.HandleFunc("/categories", getCategories.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Категории (администрирование) ---
	protected.HandleFunc("/categories", createCategory.Handle).Methods(http.MethodPost)

	// --- Недельный календарь слотов ---
	protected.HandleFunc("/timeslots/week", getWeekSlots.Handle).Methods(http.MethodGet)

	// --- Слоты (администрирование) ---
	protected.HandleFunc("/timeslots", createTimeslot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/timeslots/{slotId}", deleteTimeslot.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Предпочтения пользователя ---
	protected.HandleFunc("/me/preferences", getPreferences.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/preferences", updatePreferences.Handle).Methods(http.MethodPut)

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

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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers/create_booking"
	getAppointmentHandler "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers/get_available_slots"
	getCustomerAppointmentsHandler "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers/get_customer_appointments"
	getDayBoardHandler "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers/get_day_board"
	listCatalogHandler "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers/list_catalog"
	setBarberAvailabilityHandler "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers/set_barber_availability"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/middleware"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/bootstrap"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/config"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	appointmentRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/appointment"
	barberRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/barber"
	customerRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/customer"
	serviceRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/service"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/integrations/notifier"
	appointmentsService "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/appointments"
	catalogService "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/catalog"
	createBookingUC "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/usecase/get_available_slots"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/migrations"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/dbmetrics"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/logger"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/metrics"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/txmanager"
)

// eventPublisher публикация событий о записях (Kafka или noop)
type eventPublisher interface {
	Publish(ctx context.Context, eventType domain.AppointmentEventType, appointment *domain.Appointment) error
	Close() error
}

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting Berber-Randevu-Sistemi...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены); nil-метрики ничего не пишут
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	barberRepository := barberRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Миграции и администратор
	if cfg.Bootstrap.RunMigrations {
		startupCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if err := migrations.Apply(startupCtx, db); err != nil {
			cancel()
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied")

		_, err := bootstrap.EnsureAdmin(startupCtx, customerRepository, bootstrap.AdminAccount{
			Email:    cfg.Bootstrap.AdminEmail,
			FullName: cfg.Bootstrap.AdminName,
			Password: cfg.Bootstrap.AdminPassword,
		}, log)
		cancel()
		if err != nil {
			log.Fatal("Failed to bootstrap admin account: %v", err)
		}
	}

	// Публикация событий
	var events eventPublisher = notifier.Noop{}
	if cfg.Kafka.Enabled {
		events = notifier.NewKafkaNotifier(
			cfg.Kafka.Brokers,
			cfg.Kafka.Topic,
			time.Duration(cfg.Kafka.WriteTimeout)*time.Second,
			log,
		)
		log.Info("Kafka notifier enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer func() {
		if err := events.Close(); err != nil {
			log.Error("Failed to close notifier: %v", err)
		}
	}()

	// Ограничение частоты создания записей
	var limiter middleware.Limiter
	if cfg.RateLimit.Enabled {
		if cfg.Redis.Enabled {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()

			if err := rdb.Ping(context.Background()).Err(); err != nil {
				log.Warn("Redis is unreachable, rate limiting will fail open: %v", err)
			}
			limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimit.RequestsPerMinute, time.Minute, "berber:rl")
			log.Info("Rate limit backed by Redis at %s", cfg.Redis.Addr)
		} else {
			limiter = middleware.NewLocalLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
			log.Info("Rate limit kept in memory")
		}
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		customerRepository,
		txMgr,
		events,
		nil,
		log,
	)
	catalogSvc := catalogService.NewService(barberRepository, serviceRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		barberRepository,
		serviceRepository,
		txMgr,
		events,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		barberRepository,
		serviceRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(appointmentSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	getDayBoard := getDayBoardHandler.NewHandler(appointmentSvc, log)
	listCatalog := listCatalogHandler.NewHandler(catalogSvc, log)
	setBarberAvailability := setBarberAvailabilityHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (X-User-ID не обязателен)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	public.HandleFunc("/barbers", listCatalog.HandleBarbers).Methods(http.MethodGet)
	public.HandleFunc("/services", listCatalog.HandleServices).Methods(http.MethodGet)
	public.HandleFunc("/barbers/{barberId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи доступно и гостям; частота ограничивается
	var bookHandler http.Handler = http.HandlerFunc(createBooking.Handle)
	if limiter != nil {
		bookHandler = middleware.RateLimit(limiter, log)(bookHandler)
	}
	public.Handle("/appointments", bookHandler).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/customers/me/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin(customerRepository, log))

	admin.HandleFunc("/appointments", getDayBoard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/barbers/{barberId}/availability", setBarberAvailability.Handle).Methods(http.MethodPatch)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

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

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

	createBookingHandler "github.com/m04kA/CRS-BookingService/internal/api/handlers/create_booking"
	createResourceHandler "github.com/m04kA/CRS-BookingService/internal/api/handlers/create_resource"
	getBookingHandler "github.com/m04kA/CRS-BookingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/CRS-BookingService/internal/api/handlers/get_bookings"
	listResourcesHandler "github.com/m04kA/CRS-BookingService/internal/api/handlers/list_resources"
	updateBookingStatusHandler "github.com/m04kA/CRS-BookingService/internal/api/handlers/update_booking_status"
	updateResourceHandler "github.com/m04kA/CRS-BookingService/internal/api/handlers/update_resource"
	updateResourceStatusHandler "github.com/m04kA/CRS-BookingService/internal/api/handlers/update_resource_status"
	"github.com/m04kA/CRS-BookingService/internal/api/middleware"
	"github.com/m04kA/CRS-BookingService/internal/config"
	bookingRepo "github.com/m04kA/CRS-BookingService/internal/infra/storage/booking"
	resourceRepo "github.com/m04kA/CRS-BookingService/internal/infra/storage/resource"
	bookingsService "github.com/m04kA/CRS-BookingService/internal/service/bookings"
	resourcesService "github.com/m04kA/CRS-BookingService/internal/service/resources"
	createBookingUC "github.com/m04kA/CRS-BookingService/internal/usecase/create_booking"
	updateBookingStatusUC "github.com/m04kA/CRS-BookingService/internal/usecase/update_booking_status"
	"github.com/m04kA/CRS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CRS-BookingService/pkg/logger"
	"github.com/m04kA/CRS-BookingService/pkg/metrics"
	"github.com/m04kA/CRS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/CRS-BookingService/pkg/txmanager"
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

	log.Info("Starting CRS-BookingService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		resourceRepository *resourceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	resourceSvc := resourcesService.NewService(resourceRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		resourceRepository,
		txMgr,
		log,
	)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	listResources := listResourcesHandler.NewHandler(resourceSvc, log)
	createResource := createResourceHandler.NewHandler(resourceSvc, log)
	updateResource := updateResourceHandler.NewHandler(resourceSvc, log)
	updateResourceStatus := updateResourceStatusHandler.NewHandler(resourceSvc, log)

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

	// --- Бронирования ---
	// Создание бронирования (admission: проверка конфликтов + вставка)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией по ресурсу и заявителю
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования (approve/reject)
	api.HandleFunc("/bookings/{bookingId}", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Ресурсы ---
	// Каталог ресурсов
	api.HandleFunc("/resources", listResources.Handle).Methods(http.MethodGet)

	// Создание ресурса (административное)
	api.HandleFunc("/resources", createResource.Handle).Methods(http.MethodPost)

	// Редактирование метаданных ресурса (административное)
	api.HandleFunc("/resources/{resourceId}", updateResource.Handle).Methods(http.MethodPut)

	// Административный статус ресурса (вывод из оборота)
	api.HandleFunc("/resources/{resourceId}/status", updateResourceStatus.Handle).Methods(http.MethodPatch)

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

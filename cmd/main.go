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

	cancelBookingHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/create_booking"
	createVenueHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/create_venue"
	deleteVenueHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/delete_venue"
	getAvailabilityHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/get_availability"
	getProfileHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/get_profile"
	getUserBookingsHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/get_user_bookings"
	getVenueHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/get_venue"
	listVenuesHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/list_venues"
	loginHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/logout"
	quoteStayHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/quote_stay"
	registerHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/register"
	updateAvatarHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/update_avatar"
	updateVenueHandler "github.com/m04kA/HLD-BookingGateway/internal/api/handlers/update_venue"
	"github.com/m04kA/HLD-BookingGateway/internal/api/middleware"
	"github.com/m04kA/HLD-BookingGateway/internal/config"
	sessionRepo "github.com/m04kA/HLD-BookingGateway/internal/infra/storage/session"
	holidazeClient "github.com/m04kA/HLD-BookingGateway/internal/integrations/holidaze"
	bookingsService "github.com/m04kA/HLD-BookingGateway/internal/service/bookings"
	profilesService "github.com/m04kA/HLD-BookingGateway/internal/service/profiles"
	sessionService "github.com/m04kA/HLD-BookingGateway/internal/service/session"
	venuesService "github.com/m04kA/HLD-BookingGateway/internal/service/venues"
	createBookingUC "github.com/m04kA/HLD-BookingGateway/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/HLD-BookingGateway/internal/usecase/get_availability"
	quoteStayUC "github.com/m04kA/HLD-BookingGateway/internal/usecase/quote_stay"
	"github.com/m04kA/HLD-BookingGateway/pkg/logger"
	"github.com/m04kA/HLD-BookingGateway/pkg/metrics"
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

	log.Info("Starting HLD-BookingGateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (хранилище сессий)
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

	// Инициализируем клиент upstream Holidaze API
	holidaze := holidazeClient.NewClient(
		cfg.Holidaze.URL,
		cfg.Holidaze.APIKey,
		time.Duration(cfg.Holidaze.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		holidaze = holidaze.WithMetrics(metricsCollector)
	}
	log.Info("Holidaze client initialized (url=%s, timeout=%ds)", cfg.Holidaze.URL, cfg.Holidaze.Timeout)

	// Инициализируем репозиторий сессий
	sessionRepository := sessionRepo.NewRepository(db)

	// Инициализируем сервисы
	sessionSvc := sessionService.NewService(sessionRepository, holidaze, log)
	venuesSvc := venuesService.NewService(holidaze, log)
	bookingsSvc := bookingsService.NewService(holidaze, log)
	profilesSvc := profilesService.NewService(holidaze, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(holidaze, log)
	quoteStayUseCase := quoteStayUC.NewUseCase(holidaze, log)
	createBookingUseCase := createBookingUC.NewUseCase(holidaze, holidaze, log)

	// Инициализируем handlers
	listVenues := listVenuesHandler.NewHandler(venuesSvc, log)
	getVenue := getVenueHandler.NewHandler(venuesSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	quoteStay := quoteStayHandler.NewHandler(quoteStayUseCase, log)
	register := registerHandler.NewHandler(sessionSvc, log)
	login := loginHandler.NewHandler(sessionSvc, log)
	logout := logoutHandler.NewHandler(sessionSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getProfile := getProfileHandler.NewHandler(profilesSvc, log)
	updateAvatar := updateAvatarHandler.NewHandler(profilesSvc, log)
	createVenue := createVenueHandler.NewHandler(venuesSvc, log)
	updateVenue := updateVenueHandler.NewHandler(venuesSvc, log)
	deleteVenue := deleteVenueHandler.NewHandler(venuesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог площадок
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

	// Доступность и расчет стоимости
	api.HandleFunc("/venues/{venueId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/quote", quoteStay.Handle).Methods(http.MethodGet)

	// Аутентификация
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionSvc))

	// --- Сессия ---
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Профили ---
	protected.HandleFunc("/profiles/{name}", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/{name}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/{name}/avatar", updateAvatar.Handle).Methods(http.MethodPut)

	// --- Управление площадками (только venue manager) ---
	manager := protected.PathPrefix("").Subrouter()
	manager.Use(middleware.VenueManager)

	manager.HandleFunc("/venues", createVenue.Handle).Methods(http.MethodPost)
	manager.HandleFunc("/venues/{venueId}", updateVenue.Handle).Methods(http.MethodPut)
	manager.HandleFunc("/venues/{venueId}", deleteVenue.Handle).Methods(http.MethodDelete)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}

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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/yash635644/barber-backend/internal/api/handlers/admin_login"
	createBookingHandler "github.com/yash635644/barber-backend/internal/api/handlers/create_booking"
	createWalkInHandler "github.com/yash635644/barber-backend/internal/api/handlers/create_walkin"
	getAvailableSlotsHandler "github.com/yash635644/barber-backend/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/yash635644/barber-backend/internal/api/handlers/get_booking"
	getShopHandler "github.com/yash635644/barber-backend/internal/api/handlers/get_shop"
	getStatsHandler "github.com/yash635644/barber-backend/internal/api/handlers/get_stats"
	healthHandler "github.com/yash635644/barber-backend/internal/api/handlers/health"
	listBookingsHandler "github.com/yash635644/barber-backend/internal/api/handlers/list_bookings"
	manageHolidaysHandler "github.com/yash635644/barber-backend/internal/api/handlers/manage_holidays"
	manageServicesHandler "github.com/yash635644/barber-backend/internal/api/handlers/manage_services"
	updateBookingHandler "github.com/yash635644/barber-backend/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/yash635644/barber-backend/internal/api/handlers/update_booking_status"
	"github.com/yash635644/barber-backend/internal/api/middleware"
	"github.com/yash635644/barber-backend/internal/config"
	bookingRepo "github.com/yash635644/barber-backend/internal/infra/storage/booking"
	holidayRepo "github.com/yash635644/barber-backend/internal/infra/storage/holiday"
	serviceRepo "github.com/yash635644/barber-backend/internal/infra/storage/service"
	shopRepo "github.com/yash635644/barber-backend/internal/infra/storage/shop"
	"github.com/yash635644/barber-backend/internal/integrations/smsgateway"
	authService "github.com/yash635644/barber-backend/internal/service/auth"
	bookingsService "github.com/yash635644/barber-backend/internal/service/bookings"
	catalogService "github.com/yash635644/barber-backend/internal/service/catalog"
	holidaysService "github.com/yash635644/barber-backend/internal/service/holidays"
	"github.com/yash635644/barber-backend/internal/service/notifications"
	shopService "github.com/yash635644/barber-backend/internal/service/shop"
	createBookingUC "github.com/yash635644/barber-backend/internal/usecase/create_booking"
	createWalkInUC "github.com/yash635644/barber-backend/internal/usecase/create_walkin"
	getAvailableSlotsUC "github.com/yash635644/barber-backend/internal/usecase/get_available_slots"
	getStatsUC "github.com/yash635644/barber-backend/internal/usecase/get_stats"
	updateBookingUC "github.com/yash635644/barber-backend/internal/usecase/update_booking"
	updateBookingStatusUC "github.com/yash635644/barber-backend/internal/usecase/update_booking_status"
	"github.com/yash635644/barber-backend/pkg/dbmetrics"
	"github.com/yash635644/barber-backend/pkg/logger"
	"github.com/yash635644/barber-backend/pkg/metrics"
	"github.com/yash635644/barber-backend/pkg/txmanager"
)

// notifier общий интерфейс асинхронного диспетчера и синхронной отправки
type notifier interface {
	Notify(ctx context.Context, to, body string)
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting barber-backend...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Shop.Location()
	if err != nil {
		log.Fatal("Invalid shop timezone %q: %v", cfg.Shop.Timezone, err)
	}

	// Метрики; при выключенных метриках nil, все потребители это переживают
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	holidayRepository := holidayRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	shopRepository := shopRepo.NewRepository(wrappedDB)

	// Отправка уведомлений
	var sender notifications.Sender
	if cfg.Notifications.Enabled {
		sender = smsgateway.NewClient(
			cfg.Notifications.GatewayURL,
			cfg.Notifications.APIKey,
			cfg.Notifications.Sender,
			time.Duration(cfg.Notifications.Timeout)*time.Second,
			log,
		)
		log.Info("SMS gateway client initialized (url=%s, timeout=%ds)",
			cfg.Notifications.GatewayURL, cfg.Notifications.Timeout)
	} else {
		sender = smsgateway.NewLogSender(log)
		log.Warn("Notifications disabled: messages will only be logged")
	}

	var (
		notify     notifier
		dispatcher *notifications.Dispatcher
	)
	if cfg.Notifications.Async {
		dispatcher = notifications.NewDispatcher(
			sender,
			cfg.Notifications.Workers,
			cfg.Notifications.QueueSize,
			time.Duration(cfg.Notifications.Timeout)*time.Second,
			metricsCollector,
			log,
		)
		dispatcher.Start()
		notify = dispatcher
		log.Info("Notification dispatcher started (workers=%d, queue=%d)",
			cfg.Notifications.Workers, cfg.Notifications.QueueSize)
	} else {
		notify = notifications.NewSyncNotifier(sender, metricsCollector, log)
	}

	// Сервисы
	shopSvc := shopService.NewService(
		cfg.Shop.ID,
		shopRepository,
		cfg.Cache.ShopSize,
		time.Duration(cfg.Cache.ShopTTLSeconds)*time.Second,
		log,
	)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	holidaysSvc := holidaysService.NewService(holidayRepository, location, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	authSvc := authService.NewService(
		authService.Credentials{
			Username:     cfg.Admin.Username,
			Password:     cfg.Admin.Password,
			PasswordHash: cfg.Admin.PasswordHash,
		},
		cfg.Admin.JWTSecret,
		time.Duration(cfg.Admin.TokenTTLHours)*time.Hour,
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		holidayRepository,
		serviceRepository,
		notify,
		metricsCollector,
		txMgr,
		createBookingUC.Config{
			ShopID:     cfg.Shop.ID,
			OwnerPhone: cfg.Shop.OwnerPhone,
			AdminURL:   cfg.Shop.AdminURL,
		},
		log,
	)
	createWalkInUseCase := createWalkInUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		metricsCollector,
		cfg.Shop.ID,
		location,
		log,
	)
	updateStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		shopSvc,
		notify,
		cfg.Bookings.StrictTransitions,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		notify,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, holidayRepository, log)
	getStatsUseCase := getStatsUC.NewUseCase(bookingRepository, location, log)

	// Handlers
	getShop := getShopHandler.NewHandler(shopSvc, log)
	manageServices := manageServicesHandler.NewHandler(catalogSvc, log)
	manageHolidays := manageHolidaysHandler.NewHandler(holidaysSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	getStats := getStatsHandler.NewHandler(getStatsUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateStatusUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	createWalkIn := createWalkInHandler.NewHandler(createWalkInUseCase, log)
	health := healthHandler.NewHandler(db, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))
	r.Use(middleware.Metrics(metricsCollector))

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	requireAdmin := middleware.Auth(authSvc, log)
	admin := func(h http.HandlerFunc) http.Handler {
		return requireAdmin(h)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/shop", getShop.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", manageServices.List).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/holidays", manageHolidays.List).Methods(http.MethodGet)
	api.HandleFunc("/holidays/upcoming", manageHolidays.Upcoming).Methods(http.MethodGet)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <token>)
	// ============================================================

	// --- Бронирования ---
	api.Handle("/admin/stats", admin(getStats.Handle)).Methods(http.MethodGet)
	api.Handle("/admin/bookings", admin(listBookings.Handle)).Methods(http.MethodGet)
	api.Handle("/admin/bookings/{id}", admin(getBooking.Handle)).Methods(http.MethodGet)
	api.Handle("/admin/bookings/{id}", admin(updateBookingStatus.Handle)).Methods(http.MethodPut)
	api.Handle("/admin/bookings/{id}/update", admin(updateBooking.Handle)).Methods(http.MethodPut)
	api.Handle("/admin/walkin", admin(createWalkIn.Handle)).Methods(http.MethodPost)

	// --- Прайс-лист и выходные ---
	api.Handle("/services", admin(manageServices.Create)).Methods(http.MethodPost)
	api.Handle("/services/{id}", admin(manageServices.Update)).Methods(http.MethodPut)
	api.Handle("/services/{id}", admin(manageServices.Delete)).Methods(http.MethodDelete)
	api.Handle("/holidays", admin(manageHolidays.Create)).Methods(http.MethodPost)
	api.Handle("/holidays/{id}", admin(manageHolidays.Delete)).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	// Новых уведомлений после остановки сервера не будет; дожидаемся очереди
	if dispatcher != nil {
		if err := dispatcher.Stop(shutdownCtx); err != nil {
			log.Error("Notification queue was not drained: %v", err)
		} else {
			log.Info("Notification queue drained")
		}
	}

	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}

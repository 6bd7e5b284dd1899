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

	advanceStatusHandler "github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers/advance_booking_status"
	cancelBookingHandler "github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers/get_booking"
	getChefHandler "github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers/get_chef"
	getUserBookingsHandler "github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers/get_user_bookings"
	listChefsHandler "github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers/list_chefs"
	logoutHandler "github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers/logout"
	refreshChefsHandler "github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers/refresh_chefs"
	requestOTPHandler "github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers/request_otp"
	verifyOTPHandler "github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers/verify_otp"
	"github.com/chefhub-in/ChefHub-BookingService/internal/api/middleware"
	"github.com/chefhub-in/ChefHub-BookingService/internal/config"
	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	bookingRepo "github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/booking"
	directoryCache "github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/directory"
	sessionStore "github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/session"
	chefDirectoryClient "github.com/chefhub-in/ChefHub-BookingService/internal/integrations/chefdirectory"
	"github.com/chefhub-in/ChefHub-BookingService/internal/integrations/msgflow"
	"github.com/chefhub-in/ChefHub-BookingService/internal/integrations/otp"
	authService "github.com/chefhub-in/ChefHub-BookingService/internal/service/auth"
	bookingsService "github.com/chefhub-in/ChefHub-BookingService/internal/service/bookings"
	directoryService "github.com/chefhub-in/ChefHub-BookingService/internal/service/directory"
	createBookingUC "github.com/chefhub-in/ChefHub-BookingService/internal/usecase/create_booking"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/dbmetrics"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/logger"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/metrics"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/simpletxmanager"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/txmanager"
)

// noopNotifier заглушка для выключенных уведомлений
type noopNotifier struct{}

func (n *noopNotifier) SendBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return nil
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

	log.Info("Starting ChefHub-BookingService...")
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

	// Инициализируем интеграционных клиентов
	chefClient := chefDirectoryClient.NewClient(
		cfg.ChefDirectory.BaseURL,
		cfg.ChefDirectory.GetDataEndpoint,
		time.Duration(cfg.ChefDirectory.Timeout)*time.Second,
		log,
	)
	log.Info("Chef directory client initialized (url=%s timeout=%ds)",
		cfg.ChefDirectory.BaseURL, cfg.ChefDirectory.Timeout)

	var notifier createBookingUC.Notifier = &noopNotifier{}
	if cfg.Notifications.Enabled {
		notifier = msgflow.NewClient(
			cfg.Notifications.URL,
			cfg.Notifications.AuthKey,
			cfg.Notifications.TemplateID,
			cfg.Notifications.Recipient,
			time.Duration(cfg.Notifications.Timeout)*time.Second,
			log,
		)
		log.Info("Booking notifications enabled (url=%s)", cfg.Notifications.URL)
	} else {
		log.Info("Booking notifications disabled")
	}

	otpProvider := otp.NewStubProvider(cfg.Auth.OTPLength, log)

	// In-memory состояние: сессии и per-session кэш каталога
	sessions := sessionStore.NewStore(time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute)
	chefCache := directoryCache.NewCache()

	// Инициализируем репозиторий бронирований (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	directorySvc := directoryService.NewService(chefClient, chefCache, sessions, log)
	authSvc := authService.NewService(otpProvider, sessions, directorySvc, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		chefClient,
		notifier,
		txMgr,
		log,
	)

	// Инициализируем handlers
	requestOTP := requestOTPHandler.NewHandler(authSvc, log)
	verifyOTP := verifyOTPHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	listChefs := listChefsHandler.NewHandler(directorySvc, log)
	getChef := getChefHandler.NewHandler(directorySvc, log)
	refreshChefs := refreshChefsHandler.NewHandler(directorySvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	advanceStatus := advanceStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Запрос одноразового кода
	api.HandleFunc("/auth/otp/request", requestOTP.Handle).Methods(http.MethodPost)

	// Верификация кода и создание сессии
	api.HandleFunc("/auth/otp/verify", verifyOTP.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessions))

	// Завершение сессии
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Каталог поваров ---
	// Список поваров с поиском и фильтрами
	protected.HandleFunc("/chefs", listChefs.Handle).Methods(http.MethodGet)

	// Принудительная перезагрузка каталога
	protected.HandleFunc("/chefs/refresh", refreshChefs.Handle).Methods(http.MethodPost)

	// Карточка повара
	protected.HandleFunc("/chefs/{chefId}", getChef.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перевод бронирования в следующий статус
	protected.HandleFunc("/bookings/{bookingId}/status", advanceStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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

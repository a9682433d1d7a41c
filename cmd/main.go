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

	calculateTotalHandler "github.com/planbeau/booking-service/internal/api/handlers/calculate_total"
	cancelBookingHandler "github.com/planbeau/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/planbeau/booking-service/internal/api/handlers/create_booking"
	createPaymentIntentHandler "github.com/planbeau/booking-service/internal/api/handlers/create_payment_intent"
	getAvailableSlotsHandler "github.com/planbeau/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/planbeau/booking-service/internal/api/handlers/get_booking"
	getPaymentConfigHandler "github.com/planbeau/booking-service/internal/api/handlers/get_payment_config"
	getUserBookingsHandler "github.com/planbeau/booking-service/internal/api/handlers/get_user_bookings"
	getVendorHandler "github.com/planbeau/booking-service/internal/api/handlers/get_vendor"
	previewQuoteHandler "github.com/planbeau/booking-service/internal/api/handlers/preview_quote"
	recordVendorViewHandler "github.com/planbeau/booking-service/internal/api/handlers/record_vendor_view"
	resolveLocationHandler "github.com/planbeau/booking-service/internal/api/handlers/resolve_location"
	sessionStateHandler "github.com/planbeau/booking-service/internal/api/handlers/session_state"
	shareVendorQRHandler "github.com/planbeau/booking-service/internal/api/handlers/share_vendor_qr"
	validateBookingHandler "github.com/planbeau/booking-service/internal/api/handlers/validate_booking"
	"github.com/planbeau/booking-service/internal/api/middleware"
	"github.com/planbeau/booking-service/internal/config"
	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/infra/clientstore"
	"github.com/planbeau/booking-service/internal/infra/events"
	bookingRepo "github.com/planbeau/booking-service/internal/infra/storage/booking"
	offeringRepo "github.com/planbeau/booking-service/internal/infra/storage/offering"
	policyRepo "github.com/planbeau/booking-service/internal/infra/storage/policy"
	vendorRepo "github.com/planbeau/booking-service/internal/infra/storage/vendor"
	placesClient "github.com/planbeau/booking-service/internal/integrations/places"
	"github.com/planbeau/booking-service/internal/integrations/stripepay"
	bookingsService "github.com/planbeau/booking-service/internal/service/bookings"
	paymentsService "github.com/planbeau/booking-service/internal/service/payments"
	sessionsService "github.com/planbeau/booking-service/internal/service/sessions"
	vendorsService "github.com/planbeau/booking-service/internal/service/vendors"
	calculateTotalUC "github.com/planbeau/booking-service/internal/usecase/calculate_total"
	createBookingUC "github.com/planbeau/booking-service/internal/usecase/create_booking"
	createPaymentIntentUC "github.com/planbeau/booking-service/internal/usecase/create_payment_intent"
	getAvailableSlotsUC "github.com/planbeau/booking-service/internal/usecase/get_available_slots"
	resolveLocationUC "github.com/planbeau/booking-service/internal/usecase/resolve_location"
	validateBookingUC "github.com/planbeau/booking-service/internal/usecase/validate_booking"
	"github.com/planbeau/booking-service/pkg/dbmetrics"
	"github.com/planbeau/booking-service/pkg/logger"
	"github.com/planbeau/booking-service/pkg/metrics"
	"github.com/planbeau/booking-service/pkg/txmanager"
)

// eventPublisher общий интерфейс Kafka и лог-публикатора
type eventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

func main() {
	configPath := "config.toml"
	if v, ok := os.LookupEnv("PLANBEAU_CONFIG"); ok && v != "" {
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

	log.Info("Starting Planbeau booking service...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil коллектор безопасен.
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	// Репозитории
	vendorRepository := vendorRepo.NewRepository(wrappedDB)
	offeringRepository := offeringRepo.NewRepository(wrappedDB)
	policyRepository := policyRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Хранилище состояния сессий: Redis или память процесса
	var store clientstore.Store
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis ping failed, continuing (addr=%s): %v", cfg.Redis.Addr, err)
		}
		cancel()

		store = clientstore.NewRedisStore(redisClient, cfg.Redis.KeyPrefix)
		log.Info("Session store: redis (addr=%s, prefix=%s)", cfg.Redis.Addr, cfg.Redis.KeyPrefix)
	} else {
		store = clientstore.NewMemoryStore()
		log.Warn("Session store: in-memory, state is lost on restart")
	}

	// Публикация доменных событий: Kafka или лог
	var publisher eventPublisher
	if cfg.Kafka.Enabled {
		writer := events.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer writer.Close()
		publisher = events.NewKafkaPublisher(writer, metricsCollector, log)
		log.Info("Events are published to kafka (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		publisher = events.NewLogPublisher(log)
		log.Info("Events are written to the log")
	}

	// Интеграционные клиенты
	stripeClient := stripepay.NewClient(cfg.Stripe.SecretKey, log)
	places := placesClient.NewClient(
		cfg.Places.URL,
		cfg.Places.APIKey,
		time.Duration(cfg.Places.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Places=%s timeout=%ds)", cfg.Places.URL, cfg.Places.Timeout)

	// Use cases
	calculateTotalUseCase := calculateTotalUC.NewUseCase(
		vendorRepository,
		offeringRepository,
		calculateTotalUC.Settings{
			PlatformFeePercent: cfg.Pricing.PlatformFeePercent,
			DefaultProvince:    cfg.Pricing.DefaultProvince,
			Currency:           cfg.Pricing.Currency,
		},
		metricsCollector,
		log,
	)
	validateBookingUseCase := validateBookingUC.NewUseCase(vendorRepository, offeringRepository, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		vendorRepository,
		store,
		getAvailableSlotsUC.Settings{HoursTTL: time.Duration(cfg.Redis.HoursTTL) * time.Second},
		log,
	)
	resolveLocationUseCase := resolveLocationUC.NewUseCase(
		places,
		resolveLocationUC.Settings{DefaultProvince: cfg.Pricing.DefaultProvince},
		log,
	)
	createPaymentIntentUseCase := createPaymentIntentUC.NewUseCase(validateBookingUseCase, calculateTotalUseCase, stripeClient, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		validateBookingUseCase,
		calculateTotalUseCase,
		stripeClient,
		publisher,
		txMgr,
		log,
	)

	// Сервисы
	sessionTTL := time.Duration(cfg.Redis.SessionTTL) * time.Second
	bookingSvc := bookingsService.NewService(bookingRepository, publisher, log)
	paymentSvc := paymentsService.NewService(paymentsService.Settings{
		PublishableKey:     cfg.Stripe.PublishableKey,
		Currency:           cfg.Pricing.Currency,
		PlatformFeePercent: cfg.Pricing.PlatformFeePercent,
		DefaultProvince:    cfg.Pricing.DefaultProvince,
	})
	vendorSvc := vendorsService.NewService(
		vendorRepository,
		offeringRepository,
		policyRepository,
		store,
		publisher,
		vendorsService.Settings{PublicURL: cfg.App.PublicURL, ViewTTL: sessionTTL},
		log,
	)
	sessionSvc := sessionsService.NewService(store, sessionTTL, log)

	// Handlers
	getVendor := getVendorHandler.NewHandler(vendorSvc, log)
	recordVendorView := recordVendorViewHandler.NewHandler(vendorSvc, log)
	shareVendorQR := shareVendorQRHandler.NewHandler(vendorSvc, log)
	calculateTotal := calculateTotalHandler.NewHandler(calculateTotalUseCase, log)
	previewQuote := previewQuoteHandler.NewHandler(calculateTotalUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	validateBooking := validateBookingHandler.NewHandler(validateBookingUseCase, log)
	resolveLocation := resolveLocationHandler.NewHandler(resolveLocationUseCase, log)
	getPaymentConfig := getPaymentConfigHandler.NewHandler(paymentSvc, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(createPaymentIntentUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	sessionState := sessionStateHandler.NewHandler(sessionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		proxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Invalid rate_limit.trusted_proxies: %v", err)
		}
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, proxies, log)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Профиль вендора ---
	api.HandleFunc("/vendors/{vendorId}", getVendor.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vendors/{vendorId}/views", recordVendorView.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vendors/{vendorId}/share/qr", shareVendorQR.Handle).Methods(http.MethodGet)

	// --- Мастер бронирования ---
	api.HandleFunc("/vendors/{vendorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vendors/{vendorId}/quote", calculateTotal.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vendors/{vendorId}/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/quotes/preview", previewQuote.Handle).Methods(http.MethodPost)
	api.HandleFunc("/locations/resolve", resolveLocation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/payments/config", getPaymentConfig.Handle).Methods(http.MethodGet)

	// --- Состояние сессии ---
	api.HandleFunc("/sessions", sessionState.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/recent-searches", sessionState.RecentSearches).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/recent-searches", sessionState.AddRecentSearch).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/recent-searches", sessionState.ClearRecentSearches).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/prefill", sessionState.GetPrefill).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/prefill", sessionState.SavePrefill).Methods(http.MethodPut)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth([]byte(cfg.Auth.JWTSecret), log))

	// --- Оплата ---
	protected.HandleFunc("/payments/intents", createPaymentIntent.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// CORS оборачивает весь роутер, чтобы preflight OPTIONS доходил до обработчика
	handler := middleware.CORS(cfg.CORS.AllowedOrigins)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

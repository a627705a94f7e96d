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

	createBookingHandler "github.com/petmais/PetMais-Backend/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/petmais/PetMais-Backend/internal/api/handlers/get_available_slots"
	getCMSComponentHandler "github.com/petmais/PetMais-Backend/internal/api/handlers/get_cms_component"
	healthHandler "github.com/petmais/PetMais-Backend/internal/api/handlers/health"
	listBestSellersHandler "github.com/petmais/PetMais-Backend/internal/api/handlers/list_best_sellers"
	listNewArrivalsHandler "github.com/petmais/PetMais-Backend/internal/api/handlers/list_new_arrivals"
	listOffersHandler "github.com/petmais/PetMais-Backend/internal/api/handlers/list_offers"
	listRecommendedHandler "github.com/petmais/PetMais-Backend/internal/api/handlers/list_recommended"
	updateCMSComponentHandler "github.com/petmais/PetMais-Backend/internal/api/handlers/update_cms_component"
	"github.com/petmais/PetMais-Backend/internal/api/middleware"
	"github.com/petmais/PetMais-Backend/internal/config"
	blockedDayRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/blockedday"
	bookingRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/booking"
	cmsRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/cms"
	productRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/product"
	ruleRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/rule"
	catalogService "github.com/petmais/PetMais-Backend/internal/service/catalog"
	cmsService "github.com/petmais/PetMais-Backend/internal/service/cms"
	createBookingUC "github.com/petmais/PetMais-Backend/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/petmais/PetMais-Backend/internal/usecase/get_available_slots"
	"github.com/petmais/PetMais-Backend/pkg/dbmetrics"
	"github.com/petmais/PetMais-Backend/pkg/logger"
	"github.com/petmais/PetMais-Backend/pkg/metrics"
	"github.com/petmais/PetMais-Backend/pkg/simpletxmanager"
	"github.com/petmais/PetMais-Backend/pkg/txmanager"
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

	log.Info("Starting PetMais-Backend...")
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
		bookingRepository    *bookingRepo.Repository
		ruleRepository       *ruleRepo.Repository
		blockedDayRepository *blockedDayRepo.Repository
		productRepository    *productRepo.Repository
		cmsRepository        *cmsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager
	var pinger healthHandler.Pinger

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		ruleRepository = ruleRepo.NewRepository(wrappedDB)
		blockedDayRepository = blockedDayRepo.NewRepository(wrappedDB)
		productRepository = productRepo.NewRepository(wrappedDB)
		cmsRepository = cmsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		pinger = wrappedDB
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		ruleRepository = ruleRepo.NewRepository(db)
		blockedDayRepository = blockedDayRepo.NewRepository(db)
		productRepository = productRepo.NewRepository(db)
		cmsRepository = cmsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
		pinger = db
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(productRepository, log)
	cmsSvc := cmsService.NewService(cmsRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		ruleRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		ruleRepository,
		blockedDayRepository,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(pinger, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listOffers := listOffersHandler.NewHandler(catalogSvc, log)
	listNewArrivals := listNewArrivalsHandler.NewHandler(catalogSvc, log)
	listBestSellers := listBestSellersHandler.NewHandler(catalogSvc, log)
	listRecommended := listRecommendedHandler.NewHandler(catalogSvc, log)
	getCMSComponent := getCMSComponentHandler.NewHandler(cmsSvc, log)
	updateCMSComponent := updateCMSComponentHandler.NewHandler(cmsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// CORS для браузерного фронтенда
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

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
	api := r.PathPrefix("/api").Subrouter()

	// Проверка состояния API и базы данных
	api.HandleFunc("/", health.Handle).Methods(http.MethodGet)

	// --- Записи на услуги ---
	// Доступные слоты для записи
	api.HandleFunc("/horarios-disponiveis", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/agendar", createBooking.Handle).Methods(http.MethodPost, http.MethodOptions)

	// --- Витрины интернет-магазина ---
	api.HandleFunc("/ecommerce/ofertas", listOffers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/ecommerce/novidades", listNewArrivals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/ecommerce/mais-vendidos", listBestSellers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/ecommerce/recomendados", listRecommended.Handle).Methods(http.MethodGet)

	// --- CMS-контент ---
	api.HandleFunc("/cms/componente/{nome_componente}", getCMSComponent.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cms/componente/{nome_componente}", updateCMSComponent.Handle).Methods(http.MethodPut, http.MethodOptions)

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

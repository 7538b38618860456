package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/config"
	assignmentCache "github.com/m04kA/SMC-MeetingRoomService/internal/infra/cache/assignment"
	catalogLoader "github.com/m04kA/SMC-MeetingRoomService/internal/infra/catalog"
	assignmentRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/assignment"
	userServiceClient "github.com/m04kA/SMC-MeetingRoomService/internal/integrations/userservice"
	catalogService "github.com/m04kA/SMC-MeetingRoomService/internal/service/catalog"
	bookRoomUC "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/book_room"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/cache"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/logger"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/metrics"
)

const rateLimitCleanupInterval = time.Minute

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-MeetingRoomService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог офисов
	officeCatalog, err := catalogLoader.LoadFile(cfg.Catalog.File)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded from %s (locations=%d)", cfg.Catalog.File, len(officeCatalog.Locations()))

	// Инициализируем справочник пользователей
	directory, closeDirectory, err := newUserDirectory(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize user directory: %v", err)
	}
	defer closeDirectory()

	// Инициализируем сервисы и use cases
	validator := catalogService.NewValidator(officeCatalog)

	var recorder bookRoomUC.OutcomeRecorder
	if metricsCollector != nil {
		recorder = metricsCollector
	}

	bookRoomUseCase := bookRoomUC.NewUseCase(
		validator,
		directory,
		recorder,
		bookRoomUC.Options{RequireUserBinding: cfg.Booking.RequireUserBinding},
		log,
	)
	log.Info("Booking use case initialized (require_user_binding=%t)", cfg.Booking.RequireUserBinding)

	// Ограничение частоты запросов
	stopCleanupCh := make(chan struct{})
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		go limiter.RunCleanup(rateLimitCleanupInterval, stopCleanupCh)
		log.Info("Rate limit enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	router := api.NewRouter(api.Dependencies{
		Catalog:     validator,
		BookRoom:    bookRoomUseCase,
		Directory:   directory,
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		RateLimiter: limiter,
		CORSOrigins: cfg.CORS.AllowedOrigins,
		Logger:      log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
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
	close(stopCleanupCh)

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

// newUserDirectory собирает справочник пользователей по настройке user_directory.source
// и при включенном кэше оборачивает его в Redis. Возвращаемая функция закрывает соединения.
func newUserDirectory(cfg *config.Config, log *logger.Logger) (api.UserDirectory, func(), error) {
	var (
		directory api.UserDirectory
		closers   []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.UserDirectory.Source {
	case config.DirectoryStatic:
		repo, err := assignmentRepo.LoadStaticFile(cfg.UserDirectory.File)
		if err != nil {
			return nil, closeAll, err
		}
		directory = repo
		log.Info("Static user directory loaded from %s (users=%d)", cfg.UserDirectory.File, len(repo.All()))

	case config.DirectoryPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, closeAll, fmt.Errorf("failed to connect to database: %w", err)
		}
		closers = append(closers, func() { _ = db.Close() })

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("failed to ping database: %w", err)
		}
		directory = assignmentRepo.NewRepository(db)
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	case config.DirectoryHTTP:
		directory = userServiceClient.NewClient(
			cfg.UserService.URL,
			time.Duration(cfg.UserService.Timeout)*time.Second,
			log,
		)
		log.Info("UserService client initialized (url=%s, timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)

	default:
		return nil, closeAll, fmt.Errorf("unknown user directory source %q", cfg.UserDirectory.Source)
	}

	if !cfg.Cache.Enabled {
		return directory, closeAll, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisClient, err := cache.NewRedisClient(ctx, cache.Config{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	if err != nil {
		closeAll()
		return nil, func() {}, fmt.Errorf("failed to connect to redis: %w", err)
	}
	closers = append(closers, func() { _ = redisClient.Close() })
	log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)

	cached := assignmentCache.NewDirectory(directory, redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second, log)
	return cached, closeAll, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"corpsite.backend/internal/config"
	"corpsite.backend/internal/infrastructure/datasources/postgres"
	"corpsite.backend/internal/infrastructure/jobs"
	"corpsite.backend/internal/infrastructure/metrics"
	"corpsite.backend/internal/infrastructure/models"
	"corpsite.backend/internal/infrastructure/notifier"
	"corpsite.backend/internal/infrastructure/repositories"
	"corpsite.backend/internal/infrastructure/storage"
	"corpsite.backend/internal/interfaces/http/handlers"
	"corpsite.backend/internal/interfaces/http/middleware"
	"corpsite.backend/internal/usecases"
	"corpsite.backend/pkg/logger"
	"corpsite.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.DatabaseConfig, env string) (*gorm.DB, error) {
		sqlDB, err := postgres.NewConnection(cfg)
		if err != nil {
			return nil, err
		}
		return postgres.NewGorm(sqlDB, env)
	}
	listen          = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownSignals = func() <-chan os.Signal {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		return quit
	}
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis only backs idempotency keys; without it POSTs are processed as they come
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
			logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer redis.Close()
		logger.Info(ctx, "Redis initialized")
	} else {
		logger.Info(ctx, "Redis not configured, idempotency keys disabled")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database, cfg.Server.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info(ctx, "Database schema migrated")
	}

	m := metrics.New()
	media := storage.NewLocalMediaStore(cfg.Media.Root, cfg.Media.PublicURL)
	telegram := notifier.NewTelegramNotifier(cfg.Notifier.BaseURL, cfg.Notifier.Timeout)
	dispatcher := jobs.NewNotificationDispatcher(telegram, m, cfg.Notifier.Workers, cfg.Notifier.QueueSize)

	// Repositories
	uow := repositories.NewUnitOfWork(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	contactRepo := repositories.NewContactMessageRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)
	hackathonRepo := repositories.NewHackathonRepository(db, uow)
	contentRepo := repositories.NewContentRepository(db)

	// Usecases
	applications := usecases.NewApplicationPipeline(applicationRepo, media, destination(cfg.Telegram.Career), dispatcher, m)
	contacts := usecases.NewContactPipeline(contactRepo, destination(cfg.Telegram.Contact), dispatcher, m)
	inquiries := usecases.NewInquiryPipeline(inquiryRepo, destination(cfg.Telegram.CPU), dispatcher, m)
	hackathon := usecases.NewHackathonPipeline(hackathonRepo, destination(cfg.Telegram.Hackathon), dispatcher, m)
	contentUsecase := usecases.NewContentUsecase(contentRepo, media)

	r := newRouter(cfg, m, routeDeps{
		applicationHandler: handlers.NewApplicationHandler(applications),
		contactHandler:     handlers.NewContactHandler(contacts),
		inquiryHandler:     handlers.NewInquiryHandler(inquiries),
		hackathonHandler:   handlers.NewHackathonHandler(hackathon),
		contentHandler:     handlers.NewContentHandler(contentUsecase),
		idempotency:        middleware.IdempotencyMiddleware(),
	})

	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		dispatcher.Start(jobCtx)
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-shutdownSignals()
		logger.Info(ctx, "Shutting down server")
		shutdownCtx, done := context.WithTimeout(ctx, shutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "Server shutdown incomplete", zap.Error(err))
		}
	}()

	logger.Info(ctx, "Corpsite backend starting", zap.String("port", cfg.Server.Port))
	err = listen(srv)

	// Queued notifications still go out before exit
	dispatcher.Stop()
	<-dispatcherDone

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func destination(d config.TelegramDestination) notifier.Destination {
	return notifier.Destination{Token: d.Token, ChatID: d.ChatID}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/sigo_companion/internal/capture"
	"github.com/shenikar/sigo_companion/internal/config"
	"github.com/shenikar/sigo_companion/internal/gateway"
	"github.com/shenikar/sigo_companion/internal/geocode"
	v1 "github.com/shenikar/sigo_companion/internal/handler/http/v1"
	"github.com/shenikar/sigo_companion/internal/offline"
	"github.com/shenikar/sigo_companion/internal/repository"
	"github.com/shenikar/sigo_companion/internal/service"
	"github.com/shenikar/sigo_companion/internal/share"
	"github.com/shenikar/sigo_companion/internal/webhook"
	"github.com/shenikar/sigo_companion/pkg/logger"
	"github.com/shenikar/sigo_companion/pkg/postgres"
	redisclient "github.com/shenikar/sigo_companion/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/sigo_companion/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SIGO Companion API
// @version 1.0
// @description Incident lifecycle API for the fire department field app.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New("file://migrations", migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Вебхуки включаются только при заданном WEBHOOK_URL
	var publisher webhook.Publisher = webhook.NopPublisher{}
	if cfg.WebhookURL != "" {
		publisher = webhook.NewRedisPublisher(redisClient)
		webhook.NewWorker(redisClient, log, cfg).Start(ctx)
	}

	// Репозитории
	draftRepo := repository.NewDraftRepository(dbpool)
	stats := repository.NewStatsStore(redisClient)

	// Внешние зависимости
	backend, err := gateway.NewClient(cfg.BackendURL, cfg.BackendTimeout, log,
		gateway.WithIdentityCache(repository.NewIdentityCache(redisClient), cfg.IdentityCacheTTL))
	if err != nil {
		log.Fatalf("Failed to create backend client: %v", err)
	}
	geocoder, err := geocode.New(cfg.MapsProvider, cfg.GoogleMapsAPIKey, cfg.NominatimURL)
	if err != nil {
		log.Fatalf("Failed to create geocoder: %v", err)
	}
	renderer, err := offline.NewHTMLRenderer()
	if err != nil {
		log.Fatalf("Failed to load offline report template: %v", err)
	}
	sharer, err := share.New(ctx, share.Config{
		Provider:  cfg.ShareProvider,
		LocalPath: cfg.ShareLocalPath,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		URLTTL:    cfg.ShareURLTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create share target: %v", err)
	}

	// Сервисы
	store := service.NewDraftStore(draftRepo)
	sessionService := service.NewSessionService(backend, log)
	services := v1.Services{
		Drafts: service.NewDraftService(store, backend, stats, publisher, log, time.Now),
		Capture: service.NewCaptureService(store, geocoder,
			capture.NewPhotoEncoder(uint(cfg.PhotoMaxDimension), cfg.PhotoJPEGQuality), log),
		Offline: service.NewOfflineService(store, sessionService, renderer,
			offline.NewChromePDFPrinter(cfg.PDFTimeout), sharer, publisher, log, time.Now),
		Lifecycle: service.NewLifecycleService(backend, stats, publisher, log),
		Session:   sessionService,
	}

	handler := v1.NewHandler(services, log, cfg)

	router := gin.Default()
	handler.RegisterRoutes(router.Group("/api/v1"))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

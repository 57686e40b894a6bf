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

	"github.com/shenikar/event_safety_analytics/internal/cache"
	"github.com/shenikar/event_safety_analytics/internal/config"
	"github.com/shenikar/event_safety_analytics/internal/dispatch"
	v1 "github.com/shenikar/event_safety_analytics/internal/handler/http/v1"
	"github.com/shenikar/event_safety_analytics/internal/repository"
	"github.com/shenikar/event_safety_analytics/internal/service"
	"github.com/shenikar/event_safety_analytics/internal/weather"
	"github.com/shenikar/event_safety_analytics/pkg/logger"
	"github.com/shenikar/event_safety_analytics/pkg/postgres"
	redisclient "github.com/shenikar/event_safety_analytics/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/event_safety_analytics/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Event Safety Analytics API
// @version 1.0
// @description Predictive risk and crowd analytics engine for live-event safety.
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

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

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

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPoolSize)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя уведомлений об оповещениях
	alertPublisher := dispatch.NewRedisPublisher(redisClient)

	// Инициализация и запуск воркера доставки уведомлений
	dispatchWorker := dispatch.NewWorker(redisClient, log, cfg)
	dispatchWorker.Start(ctx)

	// Провайдер погоды: реальный HTTP-клиент или симулятор, если URL не задан
	var weatherProvider weather.Provider
	if cfg.WeatherBaseURL != "" {
		weatherProvider = weather.NewHTTPProvider(cfg.WeatherBaseURL, cfg.WeatherTimeout, log)
	} else {
		log.Warn("WEATHER_BASE_URL is not set, using simulated weather provider")
		weatherProvider = weather.NewSimulatedProvider()
	}

	// Инициализация репозиториев
	eventRepo := repository.NewEventRepository(dbpool, redisClient)
	incidentRepo := repository.NewIncidentRepository(dbpool)
	attendanceRepo := repository.NewAttendanceRepository(dbpool)
	weatherRepo := repository.NewWeatherRepository(dbpool)
	riskRepo := repository.NewRiskRepository(dbpool)
	patternRepo := repository.NewPatternRepository(dbpool)
	predictionRepo := repository.NewPredictionRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool)

	// Инициализация сервисов
	eventService := service.NewEventService(eventRepo, incidentRepo, attendanceRepo, weatherRepo, weatherProvider, log)
	riskService := service.NewRiskService(eventRepo, incidentRepo, weatherRepo, riskRepo, cfg.IncidentWindow, log)
	patternService := service.NewPatternService(eventRepo, incidentRepo, attendanceRepo, weatherRepo, patternRepo, log)
	crowdService := service.NewCrowdFlowService(eventRepo, attendanceRepo, predictionRepo, service.NewStaticZoneSource(), cfg.PredictionHorizon, cfg.PredictionStep, log)
	alertService := service.NewAlertService(eventRepo, attendanceRepo, alertRepo, riskService, weatherProvider, alertPublisher, cfg, log)

	// Кеш сводных отчётов живёт в Redis рядом с кешем мероприятий
	reportCache := cache.NewRedisCache(redisClient, cfg.AnalyticsCacheTTL)
	analyticsService := service.NewAnalyticsService(eventRepo, riskService, patternService, crowdService, alertService, reportCache, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(eventService, riskService, patternService, crowdService, alertService, analyticsService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

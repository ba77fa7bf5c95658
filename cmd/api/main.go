package main

// @title Discovery Microservice API
// @version 1.0.0
// @description Микросервис поиска мест вдоль маршрута. Принимает GPS-маршрут и пользовательские предпочтения, ищет места через внешнего провайдера, схлопывает дубликаты и фильтрует результат.
// @description
// @description Основные возможности:
// @description - Поиск мест вдоль маршрута с fallback на поиск вокруг центра
// @description - Дедупликация кандидатов по идентификатору, расстоянию и имени
// @description - Фильтрация по рейтингу, числу отзывов и типу места
// @description - Привязка GPS-треков к дорожной сети
// @description - Исключение уже сохранённых и отклонённых пользователем мест

// @contact.name API Support
// @contact.email support@discovery-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/discovery-microservice/docs"
	"github.com/discovery-microservice/internal/config"
	httpDelivery "github.com/discovery-microservice/internal/delivery/http"
	"github.com/discovery-microservice/internal/delivery/http/handler"
	"github.com/discovery-microservice/internal/infrastructure/googleplaces"
	"github.com/discovery-microservice/internal/infrastructure/googleroads"
	"github.com/discovery-microservice/internal/pkg/logger"
	"github.com/discovery-microservice/internal/repository/cache"
	"github.com/discovery-microservice/internal/repository/postgres"
	"github.com/discovery-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Discovery Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and provider clients
	reviewRepo := postgres.NewReviewedPlacesRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	placesClient := googleplaces.NewPlacesClient(&cfg.GooglePlaces, log)
	roadsClient := googleroads.NewRoadsClient(&cfg.GoogleRoads, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	discoveryUC := usecase.NewDiscoveryUseCase(
		placesClient,
		reviewRepo,
		cacheRepo,
		cfg.Discovery,
		cfg.Cache.DiscoveryCacheTTL,
		log,
	)

	snapUC := usecase.NewSnapUseCase(
		roadsClient,
		cfg.GoogleRoads.BatchSize,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUC, log)
	snapHandler := handler.NewSnapHandler(snapUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		discoveryHandler,
		snapHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

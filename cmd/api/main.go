package main

// @title Fuel Route Service API
// @version 1.0.0
// @description Сервис оптимизации заправок для автомобильных поездок по США. Строит маршрут между двумя локациями, подбирает экономически оптимальные остановки для заправки по ценам OPIS и возвращает суммарную стоимость топлива.
// @description
// @description Основные возможности:
// @description - Построение маршрута и подбор оптимальных заправок
// @description - Поиск станций в радиусе от точки
// @description - Статистика по загруженным станциям и ценам

// @contact.name API Support

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

	_ "github.com/fuel-route-service/docs/swagger"
	"github.com/fuel-route-service/internal/config"
	httpDelivery "github.com/fuel-route-service/internal/delivery/http"
	"github.com/fuel-route-service/internal/delivery/http/handler"
	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/infrastructure/nominatim"
	"github.com/fuel-route-service/internal/infrastructure/openrouteservice"
	"github.com/fuel-route-service/internal/pkg/logger"
	"github.com/fuel-route-service/internal/repository/cache"
	"github.com/fuel-route-service/internal/repository/postgres"
	"github.com/fuel-route-service/internal/usecase"
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

	log.Info("Starting Fuel Route Service")
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

	// 6. Initialize Repositories
	stationRepo := postgres.NewStationRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	geocodingRepo := nominatim.NewClient(&cfg.Geocode, log)
	routingRepo := openrouteservice.NewClient(&cfg.Routing, log)
	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	vehicle := domain.Vehicle{
		TankRangeMiles: cfg.Vehicle.TankRangeMiles,
		MilesPerGallon: cfg.Vehicle.MilesPerGallon,
		ReserveMiles:   cfg.Vehicle.ReserveMiles,
	}
	projection := usecase.ProjectionOptions{
		MaxDetourMiles:        cfg.Corridor.MaxDetourMiles,
		OnRouteToleranceMiles: cfg.Corridor.OnRouteToleranceMiles,
		EndToleranceMiles:     cfg.Corridor.EndToleranceMiles,
		DetourSpeedMPH:        cfg.Corridor.DetourSpeedMPH,
	}

	tripUC := usecase.NewTripUseCase(
		geocodingRepo,
		routingRepo,
		stationRepo,
		cacheRepo,
		log,
		vehicle,
		projection,
		cfg.Cache.TripCacheTTL,
		cfg.Cache.GeocodeCacheTTL,
	)
	stationUC := usecase.NewStationUseCase(stationRepo, log)
	statsUC := usecase.NewStatsUseCase(stationRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)
	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	routeHandler := handler.NewRouteHandler(tripUC, log)
	stationHandler := handler.NewStationHandler(stationUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)
	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		routeHandler,
		stationHandler,
		statsHandler,
		healthHandler,
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

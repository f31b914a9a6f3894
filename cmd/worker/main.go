package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/config"
	"github.com/fuel-route-service/internal/infrastructure/nominatim"
	"github.com/fuel-route-service/internal/pkg/logger"
	"github.com/fuel-route-service/internal/repository/postgres"
	"github.com/fuel-route-service/internal/worker"
	"github.com/fuel-route-service/internal/worker/importer"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if importer is enabled
	if !cfg.Importer.Enabled {
		fmt.Println("Importer is disabled in configuration. Set IMPORTER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Station Import Worker")
	log.Info("Configuration loaded",
		zap.String("csv_path", cfg.Importer.CSVPath),
		zap.Duration("geocode_interval", cfg.Importer.GeocodeInterval),
		zap.Bool("truncate_first", cfg.Importer.TruncateFirst))

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

	// 4. Initialize dependencies
	stationRepo := postgres.NewStationRepository(db)
	geocodingRepo := nominatim.NewClient(&cfg.Geocode, log)

	// 5. Register workers
	manager := worker.NewWorkerManager(log)
	manager.Register(importer.NewStationImportWorker(stationRepo, geocodingRepo, cfg.Importer, log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down workers gracefully...")
	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	log.Info("Worker stopped successfully")
}

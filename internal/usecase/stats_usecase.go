package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
)

// StatsUseCase - use case для статистики по станциям и ценам
type StatsUseCase struct {
	stationRepo repository.StationRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewStatsUseCase - создание нового StatsUseCase
func NewStatsUseCase(
	stationRepo repository.StationRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		stationRepo: stationRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetStats - получение статистики с lookaside-кешем
func (uc *StatsUseCase) GetStats(ctx context.Context) (*domain.PriceStats, error) {
	if cached, err := uc.cacheRepo.GetStats(ctx); err != nil {
		uc.logger.Warn("Stats cache lookup failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	stats, err := uc.stationRepo.GetPriceStats(ctx)
	if err != nil {
		uc.logger.Error("Failed to get price stats", zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	}

	return stats, nil
}

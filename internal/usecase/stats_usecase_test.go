package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/pkg/errors"
	"github.com/fuel-route-service/internal/usecase"
)

func TestStatsUseCase_GetStats_CacheMiss(t *testing.T) {
	stationRepo := new(MockStationRepository)
	cacheRepo := new(MockCacheRepository)
	uc := usecase.NewStatsUseCase(stationRepo, cacheRepo, zap.NewNop(), 10*time.Minute)
	ctx := context.Background()

	stats := &domain.PriceStats{
		TotalStations: 8000,
		MinPrice:      2.15,
		MaxPrice:      4.80,
		AvgPrice:      3.12,
		StatesCovered: 48,
	}
	cacheRepo.On("GetStats", ctx).Return(nil, nil)
	stationRepo.On("GetPriceStats", ctx).Return(stats, nil)
	cacheRepo.On("SetStats", ctx, stats, 10*time.Minute).Return(nil)

	got, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
	cacheRepo.AssertCalled(t, "SetStats", ctx, stats, 10*time.Minute)
}

func TestStatsUseCase_GetStats_CacheHit(t *testing.T) {
	stationRepo := new(MockStationRepository)
	cacheRepo := new(MockCacheRepository)
	uc := usecase.NewStatsUseCase(stationRepo, cacheRepo, zap.NewNop(), 10*time.Minute)
	ctx := context.Background()

	cached := &domain.PriceStats{TotalStations: 8000, AvgPrice: 3.12}
	cacheRepo.On("GetStats", ctx).Return(cached, nil)

	got, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
	stationRepo.AssertNotCalled(t, "GetPriceStats", mock.Anything)
}

func TestStatsUseCase_GetStats_CacheErrorFallsThrough(t *testing.T) {
	stationRepo := new(MockStationRepository)
	cacheRepo := new(MockCacheRepository)
	uc := usecase.NewStatsUseCase(stationRepo, cacheRepo, zap.NewNop(), 10*time.Minute)
	ctx := context.Background()

	stats := &domain.PriceStats{TotalStations: 100}
	cacheRepo.On("GetStats", ctx).Return(nil, errors.ErrCacheError)
	stationRepo.On("GetPriceStats", ctx).Return(stats, nil)
	cacheRepo.On("SetStats", ctx, stats, 10*time.Minute).Return(errors.ErrCacheError)

	got, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestStatsUseCase_GetStats_RepositoryError(t *testing.T) {
	stationRepo := new(MockStationRepository)
	cacheRepo := new(MockCacheRepository)
	uc := usecase.NewStatsUseCase(stationRepo, cacheRepo, zap.NewNop(), 10*time.Minute)
	ctx := context.Background()

	cacheRepo.On("GetStats", ctx).Return(nil, nil)
	stationRepo.On("GetPriceStats", ctx).Return(nil, errors.ErrDatabaseError)

	_, err := uc.GetStats(ctx)
	require.Error(t, err)
	assert.Equal(t, errors.ErrDatabaseError, err)
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func geocodeKey(location string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(location))
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetTrip получает закешированный план поездки
func (r *cacheRepository) GetTrip(ctx context.Context, key string) (*domain.TripPlan, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var plan domain.TripPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		r.logger.Error("Failed to unmarshal trip plan from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal trip plan: %w", err)
	}

	return &plan, nil
}

// SetTrip сохраняет план поездки в кеше
func (r *cacheRepository) SetTrip(ctx context.Context, key string, plan *domain.TripPlan, ttl time.Duration) error {
	data, err := json.Marshal(plan)
	if err != nil {
		r.logger.Error("Failed to marshal trip plan", zap.Error(err))
		return fmt.Errorf("marshal trip plan: %w", err)
	}

	return r.Set(ctx, key, data, ttl)
}

// GetGeocode получает закешированные координаты локации
func (r *cacheRepository) GetGeocode(ctx context.Context, location string) (*domain.Point, error) {
	data, err := r.Get(ctx, geocodeKey(location))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var point domain.Point
	if err := json.Unmarshal(data, &point); err != nil {
		r.logger.Error("Failed to unmarshal geocode from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal geocode: %w", err)
	}

	return &point, nil
}

// SetGeocode сохраняет координаты локации в кеше
func (r *cacheRepository) SetGeocode(ctx context.Context, location string, point domain.Point, ttl time.Duration) error {
	data, err := json.Marshal(point)
	if err != nil {
		return fmt.Errorf("marshal geocode: %w", err)
	}

	return r.Set(ctx, geocodeKey(location), data, ttl)
}

// GetStats получает статистику из кеша
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.PriceStats, error) {
	data, err := r.Get(ctx, "stats:current")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.PriceStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

// SetStats сохраняет статистику в кеше
func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.PriceStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.Set(ctx, "stats:current", data, ttl)
}

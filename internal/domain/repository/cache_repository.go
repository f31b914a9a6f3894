package repository

import (
	"context"
	"time"

	"github.com/fuel-route-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil, nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetTrip получает закешированный план поездки (nil, nil при промахе)
	GetTrip(ctx context.Context, key string) (*domain.TripPlan, error)

	// SetTrip сохраняет план поездки в кеше
	SetTrip(ctx context.Context, key string, plan *domain.TripPlan, ttl time.Duration) error

	// GetGeocode получает закешированные координаты локации (nil, nil при промахе)
	GetGeocode(ctx context.Context, location string) (*domain.Point, error)

	// SetGeocode сохраняет координаты локации в кеше
	SetGeocode(ctx context.Context, location string, point domain.Point, ttl time.Duration) error

	// GetStats получает статистику из кеша (nil, nil при промахе)
	GetStats(ctx context.Context) (*domain.PriceStats, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.PriceStats, ttl time.Duration) error
}

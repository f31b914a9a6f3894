package repository

import (
	"context"

	"github.com/fuel-route-service/internal/domain"
)

// StationRepository определяет методы для работы с заправочными станциями
type StationRepository interface {
	// GetInBoundingBox возвращает станции с координатами внутри bbox
	// (кандидаты для проекции на коридор маршрута)
	GetInBoundingBox(ctx context.Context, box domain.BoundingBox) ([]*domain.Station, error)

	// GetInRadius возвращает станции в радиусе от точки, отсортированные по расстоянию
	GetInRadius(ctx context.Context, lat, lon, radiusMiles float64, limit int) ([]*domain.Station, error)

	// GetPriceStats возвращает агрегированную статистику по ценам
	GetPriceStats(ctx context.Context) (*domain.PriceStats, error)

	// Upsert вставляет или обновляет станцию по OPIS ID
	Upsert(ctx context.Context, station *domain.Station) error

	// Truncate удаляет все станции (используется импортёром при полной перезагрузке)
	Truncate(ctx context.Context) error
}

package repository

import (
	"context"

	"github.com/fuel-route-service/internal/domain"
)

// GeocodingRepository определяет контракт внешнего геокодера
type GeocodingRepository interface {
	// Geocode преобразует текстовое название локации в координаты.
	// Возвращает ErrLocationNotFound, если геокодер не нашёл результатов.
	Geocode(ctx context.Context, location string) (*domain.Point, error)
}

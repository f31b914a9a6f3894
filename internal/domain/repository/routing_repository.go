package repository

import (
	"context"

	"github.com/fuel-route-service/internal/domain"
)

// RoutingRepository определяет контракт внешнего провайдера маршрутизации
type RoutingRepository interface {
	// GetRoute строит автомобильный маршрут между двумя точками.
	// Возвращает ErrRouteNotFound, если проезжаемого пути нет.
	GetRoute(ctx context.Context, start, end domain.Point) (*domain.Route, error)
}

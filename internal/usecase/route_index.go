package usecase

import (
	"sort"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/pkg/utils"
)

// ProjectionOptions - параметры проекции станций на коридор маршрута
type ProjectionOptions struct {
	// MaxDetourMiles - максимальное удаление станции от маршрута (one-way);
	// станции дальше отбрасываются как находящиеся вне коридора
	MaxDetourMiles float64
	// OnRouteToleranceMiles - в пределах этого удаления станция считается
	// стоящей прямо на маршруте (детур равен нулю)
	OnRouteToleranceMiles float64
	// EndToleranceMiles - станции с позицией дальше конца маршрута плюс
	// этот допуск отбрасываются
	EndToleranceMiles float64
	// DetourSpeedMPH - средняя скорость на съезде для оценки времени детура
	DetourSpeedMPH float64
}

// ProjectStations проецирует станции-кандидаты на маршрут: для каждой станции
// вычисляется позиция вдоль ломаной (кумулятивные мили от старта) и round-trip
// детур, если станция стоит не на самом маршруте. Чистая функция.
//
// Результат отсортирован по возрастанию позиции; при равных позициях первой
// идёт более дешёвая станция.
func ProjectStations(route *domain.Route, stations []*domain.Station, opts ProjectionOptions) []domain.RouteStation {
	if len(route.Geometry) < 2 || len(stations) == 0 {
		return nil
	}

	// Кумулятивное расстояние до каждой вершины ломаной
	cumulative := make([]float64, len(route.Geometry))
	for i := 1; i < len(route.Geometry); i++ {
		prev, cur := route.Geometry[i-1], route.Geometry[i]
		cumulative[i] = cumulative[i-1] + utils.HaversineMiles(prev.Lat, prev.Lon, cur.Lat, cur.Lon)
	}

	// Геометрия провайдера может отличаться от заявленной длины маршрута;
	// позиции масштабируются к TotalDistanceMiles, чтобы позиция станции и
	// длина маршрута жили в одной системе координат.
	scale := 1.0
	if polylineLen := cumulative[len(cumulative)-1]; polylineLen > 0 && route.TotalDistanceMiles > 0 {
		scale = route.TotalDistanceMiles / polylineLen
	}

	result := make([]domain.RouteStation, 0, len(stations))
	for _, s := range stations {
		// Ближайшая вершина ломаной
		bestIdx := -1
		bestDist := opts.MaxDetourMiles
		for i, p := range route.Geometry {
			d := utils.HaversineMiles(s.Lat, s.Lon, p.Lat, p.Lon)
			if d <= bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			// Вне коридора
			continue
		}

		position := cumulative[bestIdx] * scale
		if position > route.TotalDistanceMiles+opts.EndToleranceMiles {
			continue
		}

		rs := domain.RouteStation{
			Station:                *s,
			DistanceFromStartMiles: position,
		}
		if bestDist > opts.OnRouteToleranceMiles {
			rs.DetourDistanceMiles = 2 * bestDist
			if opts.DetourSpeedMPH > 0 {
				rs.DetourDurationSecs = rs.DetourDistanceMiles / opts.DetourSpeedMPH * 3600
			}
		}

		result = append(result, rs)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].DistanceFromStartMiles != result[j].DistanceFromStartMiles {
			return result[i].DistanceFromStartMiles < result[j].DistanceFromStartMiles
		}
		return result[i].PricePerGallon < result[j].PricePerGallon
	})

	return result
}

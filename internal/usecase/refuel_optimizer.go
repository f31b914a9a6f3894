package usecase

import (
	"math"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/pkg/errors"
)

// OptimizeRefueling решает задачу оптимальной заправки: автомобиль стартует
// с полным баком на миле 0 и должен добраться до totalDistanceMiles, заправляясь
// на подмножестве станций (отсортированы по позиции на маршруте, см. ProjectStations).
//
// Жадный алгоритм с просмотром вперёд: в каждой точке решения (старт, затем
// каждая выбранная станция) рассматривается окно досягаемости на полном баке;
// пункт назначения участвует как виртуальная станция с нулевой ценой.
//   - если в окне есть точка дешевле текущей станции - едем к БЛИЖАЙШЕЙ из
//     таких точек, покупая ровно столько, чтобы доехать (откладываем покупку
//     до дешёвого топлива); пункт назначения конкурирует наравне со станциями,
//     поэтому последний отрезок не выкупается целиком по текущей цене, если
//     по пути есть станция дешевле;
//   - иначе заливаем полный бак и едем к самой дешёвой станции в окне
//     (максимум дальности перед более дорогой обязательной покупкой).
//
// Такой выбор ближайшей более дешёвой точки даёт минимальную суммарную
// стоимость, а минимальная стоимость не убывает при росте любой цены.
//
// Конвенции:
//   - стартовый полный бак предоплачен: поездка без остановок стоит $0;
//   - детур станции учитывается round-trip и расходует запас хода наравне
//     с милями маршрута;
//   - граница досягаемости включительна: станция ровно на пределе запаса
//     хода достижима;
//   - остановки с нулевой покупкой (после округления до 0.01 галлона)
//     никогда не попадают в результат.
//
// Чистая функция: одинаковый вход всегда даёт одинаковый результат.
func OptimizeRefueling(totalDistanceMiles float64, stations []domain.RouteStation, vehicle domain.Vehicle) ([]domain.FuelStop, error) {
	usable := vehicle.UsableRangeMiles()
	if usable <= 0 {
		return nil, errors.ErrUnreachableRoute
	}

	pos := 0.0
	fuel := usable // остаток хода в милях
	var current *domain.RouteStation
	next := 0 // индекс первой станции строго впереди pos
	stops := make([]domain.FuelStop, 0, 4)

	for {
		// Пропускаем станции позади и в текущей точке
		for next < len(stations) && stations[next].DistanceFromStartMiles <= pos {
			next++
		}

		distToDest := totalDistanceMiles - pos
		destInWindow := distToDest <= usable

		// Скан окна досягаемости: самая дешёвая станция (при равной цене -
		// ближайшая, список отсортирован по позиции) и ближайшая строго
		// более дешёвая, чем текущая
		var cheapest, nearestCheaper *domain.RouteStation
		var cheapestNeed, nearestCheaperNeed float64
		for i := next; i < len(stations); i++ {
			s := &stations[i]
			need := (s.DistanceFromStartMiles - pos) + s.DetourDistanceMiles
			if need > usable {
				if s.DetourDistanceMiles == 0 {
					break // дальше только недостижимые
				}
				continue
			}
			if cheapest == nil || s.PricePerGallon < cheapest.PricePerGallon {
				cheapest = s
				cheapestNeed = need
			}
			if current != nil && nearestCheaper == nil &&
				s.PricePerGallon < current.PricePerGallon &&
				s.DistanceFromStartMiles < totalDistanceMiles {
				nearestCheaper = s
				nearestCheaperNeed = need
			}
		}

		if current == nil {
			// Старт: бак полон и предоплачен, покупка невозможна
			if destInWindow {
				return stops, nil
			}
			if cheapest == nil {
				return nil, errors.ErrUnreachableRoute
			}
			fuel -= cheapestNeed
			pos = cheapest.DistanceFromStartMiles
			current = cheapest
			continue
		}

		// Впереди дешевле и ближе, чем назначение: берём ровно до неё
		if nearestCheaper != nil && (!destInWindow || nearestCheaperNeed < distToDest) {
			if nearestCheaperNeed > fuel {
				stops = appendStop(stops, current, nearestCheaperNeed-fuel, vehicle)
				fuel = nearestCheaperNeed
			}
			fuel -= nearestCheaperNeed
			pos = nearestCheaper.DistanceFromStartMiles
			current = nearestCheaper
			continue
		}

		// Назначение в окне и дешевле по пути нет: докупаем недостающее
		if destInWindow {
			if distToDest > fuel {
				stops = appendStop(stops, current, distToDest-fuel, vehicle)
			}
			return stops, nil
		}

		// Дешевле не будет: полный бак и едем к самой дешёвой в окне
		if cheapest == nil {
			return nil, errors.ErrUnreachableRoute
		}
		if usable > fuel {
			stops = appendStop(stops, current, usable-fuel, vehicle)
			fuel = usable
		}
		fuel -= cheapestNeed
		pos = cheapest.DistanceFromStartMiles
		current = cheapest
	}
}

// appendStop фиксирует покупку топлива на станции current. Объём округляется
// до 0.01 галлона; покупка, округлённая в ноль, не фиксируется вовсе, чтобы
// ни объём, ни стоимость нулевой остановки не попали в ответ.
func appendStop(stops []domain.FuelStop, current *domain.RouteStation, boughtMiles float64, vehicle domain.Vehicle) []domain.FuelStop {
	gallons := round2(vehicle.GallonsForMiles(boughtMiles))
	if gallons <= 0 {
		return stops
	}

	return append(stops, domain.FuelStop{
		Location:               current.Label(),
		Latitude:               current.Lat,
		Longitude:              current.Lon,
		DistanceFromStartMiles: round2(current.DistanceFromStartMiles),
		PricePerGallon:         current.PricePerGallon,
		FuelAddedGallons:       gallons,
		CostAtThisStop:         round2(gallons * current.PricePerGallon),
		DetourDistanceMiles:    round2(current.DetourDistanceMiles),
		DetourDurationSecs:     math.Round(current.DetourDurationSecs),
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package domain

import "fmt"

// Station - заправочная станция из данных OPIS
type Station struct {
	ID             int64   `json:"id" db:"id"`
	OPISID         string  `json:"opis_id" db:"opis_truckstop_id"`
	Name           string  `json:"name" db:"name"`
	Address        string  `json:"address" db:"address"`
	City           string  `json:"city" db:"city"`
	State          string  `json:"state" db:"state"`
	RackID         string  `json:"rack_id,omitempty" db:"rack_id"`
	Lat            float64 `json:"lat" db:"lat"`
	Lon            float64 `json:"lon" db:"lon"`
	PricePerGallon float64 `json:"fuel_price_per_gallon" db:"retail_price"`
}

// Label - человекочитаемая подпись станции для выдачи
func (s *Station) Label() string {
	return fmt.Sprintf("%s (%s, %s)", s.Name, s.City, s.State)
}

// RouteStation - станция, спроецированная на маршрут. Построение выполняет
// только route index; DistanceFromStartMiles растёт монотонно в выдаче.
// Детуры хранятся как round-trip (съезд с маршрута и возврат);
// для станций непосредственно на маршруте оба значения равны нулю.
type RouteStation struct {
	Station
	DistanceFromStartMiles float64 `json:"distance_from_start_miles"`
	DetourDistanceMiles    float64 `json:"detour_distance_miles"`
	DetourDurationSecs     float64 `json:"detour_duration_seconds"`
}

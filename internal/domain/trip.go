package domain

import "time"

// FuelStop - выбранная оптимизатором остановка. Создаётся только
// оптимизатором и не изменяется после создания.
type FuelStop struct {
	Location               string  `json:"location"`
	Latitude               float64 `json:"latitude"`
	Longitude              float64 `json:"longitude"`
	DistanceFromStartMiles float64 `json:"distance_from_start_miles"`
	PricePerGallon         float64 `json:"fuel_price_per_gallon"`
	FuelAddedGallons       float64 `json:"fuel_added_gallons"`
	CostAtThisStop         float64 `json:"cost_at_this_stop"`
	DetourDistanceMiles    float64 `json:"detour_distance_miles,omitempty"`
	DetourDurationSecs     float64 `json:"detour_duration_seconds,omitempty"`
}

// TripPlan - собранный результат оптимизации одной поездки
type TripPlan struct {
	Route                Route      `json:"route"`
	Stops                []FuelStop `json:"stops"`
	TotalFuelCostUSD     float64    `json:"total_fuel_cost_usd"`
	TotalDurationMinutes int        `json:"total_duration_minutes"`
	StartCoords          Point      `json:"start_coords"`
	EndCoords            Point      `json:"end_coords"`
}

// PriceStats - агрегированная статистика по ценам станций
type PriceStats struct {
	TotalStations int       `json:"total_stations"`
	MinPrice      float64   `json:"min_price"`
	MaxPrice      float64   `json:"max_price"`
	AvgPrice      float64   `json:"avg_price"`
	StatesCovered int       `json:"states_covered"`
	LastUpdated   time.Time `json:"last_updated"`
}

package dto

import (
	"math"

	"github.com/fuel-route-service/internal/domain"
)

// FuelStopResult - остановка для заправки в выдаче
type FuelStopResult struct {
	Location               string  `json:"location"`
	Latitude               float64 `json:"latitude"`
	Longitude              float64 `json:"longitude"`
	DistanceFromStartMiles float64 `json:"distance_from_start_miles"`
	FuelPricePerGallon     float64 `json:"fuel_price_per_gallon"`
	FuelAddedGallons       float64 `json:"fuel_added_gallons"`
	CostAtThisStop         float64 `json:"cost_at_this_stop"`
	DetourDistanceMiles    float64 `json:"detour_distance_miles,omitempty"`
	DetourDurationSeconds  float64 `json:"detour_duration_seconds,omitempty"`
}

// OptimizeRouteResponse - ответ на оптимизацию поездки. Плоская форма:
// фронтенд рисует маршрут и остановки напрямую из этого тела.
type OptimizeRouteResponse struct {
	TotalDistanceMiles                float64          `json:"total_distance_miles"`
	TotalFuelCostUSD                  float64          `json:"total_fuel_cost_usd"`
	EstimatedTotalTripDurationMinutes int              `json:"estimated_total_trip_duration_minutes"`
	OptimalFuelStops                  []FuelStopResult `json:"optimal_fuel_stops"`
	RouteGeometry                     [][]float64      `json:"route_geometry"`
	StartCoords                       []float64        `json:"start_coords"`
	EndCoords                         []float64        `json:"end_coords"`
}

// ConvertTripPlan преобразует план поездки в плоский ответ API
func ConvertTripPlan(plan *domain.TripPlan) *OptimizeRouteResponse {
	stops := make([]FuelStopResult, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		stops = append(stops, FuelStopResult{
			Location:               s.Location,
			Latitude:               s.Latitude,
			Longitude:              s.Longitude,
			DistanceFromStartMiles: s.DistanceFromStartMiles,
			FuelPricePerGallon:     s.PricePerGallon,
			FuelAddedGallons:       s.FuelAddedGallons,
			CostAtThisStop:         s.CostAtThisStop,
			DetourDistanceMiles:    s.DetourDistanceMiles,
			DetourDurationSeconds:  s.DetourDurationSecs,
		})
	}

	geometry := make([][]float64, 0, len(plan.Route.Geometry))
	for _, p := range plan.Route.Geometry {
		geometry = append(geometry, []float64{p.Lat, p.Lon})
	}

	return &OptimizeRouteResponse{
		TotalDistanceMiles:                math.Round(plan.Route.TotalDistanceMiles*100) / 100,
		TotalFuelCostUSD:                  plan.TotalFuelCostUSD,
		EstimatedTotalTripDurationMinutes: plan.TotalDurationMinutes,
		OptimalFuelStops:                  stops,
		RouteGeometry:                     geometry,
		StartCoords:                       []float64{plan.StartCoords.Lat, plan.StartCoords.Lon},
		EndCoords:                         []float64{plan.EndCoords.Lat, plan.EndCoords.Lon},
	}
}

// StationResult - станция в выдаче поиска по радиусу
type StationResult struct {
	ID                 int64   `json:"id"`
	Location           string  `json:"location"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	FuelPricePerGallon float64 `json:"fuel_price_per_gallon"`
	DistanceMiles      float64 `json:"distance_miles"`
}

// RadiusStationsResponse - ответ на поиск станций в радиусе
type RadiusStationsResponse struct {
	Stations []StationResult `json:"stations"`
	Total    int             `json:"total"`
}

// ConvertStation преобразует станцию в результат поиска
func ConvertStation(s *domain.Station, distanceMiles float64) StationResult {
	return StationResult{
		ID:                 s.ID,
		Location:           s.Label(),
		Latitude:           s.Lat,
		Longitude:          s.Lon,
		FuelPricePerGallon: s.PricePerGallon,
		DistanceMiles:      math.Round(distanceMiles*100) / 100,
	}
}

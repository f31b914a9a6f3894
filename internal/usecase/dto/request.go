package dto

// OptimizeRouteRequest - запрос на оптимизацию поездки
type OptimizeRouteRequest struct {
	StartLocation string `json:"start_location" validate:"required,min=2,max=200"`
	EndLocation   string `json:"end_location" validate:"required,min=2,max=200"`
}

// RadiusStationsRequest - запрос на поиск станций в радиусе
type RadiusStationsRequest struct {
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lon         float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusMiles float64 `json:"radius_miles" validate:"required,min=0.1,max=200"`
	Limit       int     `json:"limit" validate:"omitempty,min=1,max=500"`
}

package domain

// Route - маршрут, полученный от провайдера маршрутизации.
// Неизменяемый после построения.
type Route struct {
	Geometry             []Point `json:"geometry"`
	TotalDistanceMiles   float64 `json:"total_distance_miles"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
}

// Bounds возвращает ограничивающий прямоугольник геометрии маршрута
func (r *Route) Bounds() BoundingBox {
	return BoundsOf(r.Geometry)
}

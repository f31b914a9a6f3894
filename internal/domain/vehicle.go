package domain

// Vehicle - параметры автомобиля, постоянные в рамках одного запроса
type Vehicle struct {
	TankRangeMiles float64 `json:"tank_range_miles"`
	MilesPerGallon float64 `json:"miles_per_gallon"`
	ReserveMiles   float64 `json:"reserve_miles"`
}

// UsableRangeMiles - дальность хода на полном баке за вычетом резерва
func (v Vehicle) UsableRangeMiles() float64 {
	r := v.TankRangeMiles - v.ReserveMiles
	if r < 0 {
		return 0
	}
	return r
}

// GallonsForMiles переводит расстояние в галлоны топлива
func (v Vehicle) GallonsForMiles(miles float64) float64 {
	if v.MilesPerGallon <= 0 {
		return 0
	}
	return miles / v.MilesPerGallon
}

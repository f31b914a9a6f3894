package testhelpers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fuel-route-service/internal/domain"
)

// SeedStations inserts station fixtures directly, bypassing the repository
// under test.
func SeedStations(ctx context.Context, db *sql.DB, stations []domain.Station) error {
	for _, s := range stations {
		_, err := db.ExecContext(ctx, `
			INSERT INTO fuel_stations
				(opis_truckstop_id, name, address, city, state, rack_id, retail_price, lat, lon)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, s.OPISID, s.Name, s.Address, s.City, s.State, s.RackID, s.PricePerGallon, s.Lat, s.Lon)
		if err != nil {
			return fmt.Errorf("seed station %s: %w", s.OPISID, err)
		}
	}
	return nil
}

// CountStations returns the number of rows in fuel_stations
func CountStations(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fuel_stations").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stations: %w", err)
	}
	return count, nil
}

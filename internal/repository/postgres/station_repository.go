package postgres

import (
	"context"
	"database/sql"
	"sort"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
	"github.com/fuel-route-service/internal/pkg/errors"
	"github.com/fuel-route-service/internal/pkg/utils"
)

// Приближённое число миль в одном градусе широты; bbox-префильтр по нему,
// точная дистанция считается хаверсином уже в Go.
const milesPerDegree = 69.0

type stationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *stationRepository) GetInBoundingBox(ctx context.Context, box domain.BoundingBox) ([]*domain.Station, error) {
	query := `
		SELECT id, opis_truckstop_id, name, address, city, state, rack_id,
		       retail_price, lat, lon
		FROM fuel_stations
		WHERE lat BETWEEN $1 AND $2
		  AND lon BETWEEN $3 AND $4
		ORDER BY retail_price
	`

	var stations []*domain.Station
	err := r.db.SelectContext(ctx, &stations, query, box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)
	if err != nil {
		r.logger.Error("Failed to get stations in bounding box", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stations, nil
}

func (r *stationRepository) GetInRadius(ctx context.Context, lat, lon, radiusMiles float64, limit int) ([]*domain.Station, error) {
	delta := radiusMiles / milesPerDegree

	candidates, err := r.GetInBoundingBox(ctx, domain.BoundingBox{
		MinLat: lat - delta,
		MaxLat: lat + delta,
		MinLon: lon - delta,
		MaxLon: lon + delta,
	})
	if err != nil {
		return nil, err
	}

	type withDistance struct {
		station  *domain.Station
		distance float64
	}

	inRadius := make([]withDistance, 0, len(candidates))
	for _, s := range candidates {
		d := utils.HaversineMiles(lat, lon, s.Lat, s.Lon)
		if d <= radiusMiles {
			inRadius = append(inRadius, withDistance{station: s, distance: d})
		}
	}

	sort.Slice(inRadius, func(i, j int) bool {
		return inRadius[i].distance < inRadius[j].distance
	})

	if limit > 0 && len(inRadius) > limit {
		inRadius = inRadius[:limit]
	}

	result := make([]*domain.Station, len(inRadius))
	for i, wd := range inRadius {
		result[i] = wd.station
	}
	return result, nil
}

func (r *stationRepository) GetPriceStats(ctx context.Context) (*domain.PriceStats, error) {
	query := `
		SELECT COUNT(*)                     AS total_stations,
		       COALESCE(MIN(retail_price), 0) AS min_price,
		       COALESCE(MAX(retail_price), 0) AS max_price,
		       COALESCE(AVG(retail_price), 0) AS avg_price,
		       COUNT(DISTINCT state)       AS states_covered,
		       COALESCE(MAX(updated_at), NOW()) AS last_updated
		FROM fuel_stations
	`

	var stats domain.PriceStats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalStations,
		&stats.MinPrice,
		&stats.MaxPrice,
		&stats.AvgPrice,
		&stats.StatesCovered,
		&stats.LastUpdated,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.PriceStats{}, nil
		}
		r.logger.Error("Failed to get price stats", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &stats, nil
}

func (r *stationRepository) Upsert(ctx context.Context, station *domain.Station) error {
	query := `
		INSERT INTO fuel_stations
			(opis_truckstop_id, name, address, city, state, rack_id, retail_price, lat, lon, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (opis_truckstop_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			rack_id = EXCLUDED.rack_id,
			retail_price = EXCLUDED.retail_price,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		station.OPISID, station.Name, station.Address, station.City, station.State,
		station.RackID, station.PricePerGallon, station.Lat, station.Lon,
	)
	if err != nil {
		r.logger.Error("Failed to upsert station",
			zap.String("opis_id", station.OPISID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *stationRepository) Truncate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `TRUNCATE fuel_stations RESTART IDENTITY`); err != nil {
		r.logger.Error("Failed to truncate stations", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

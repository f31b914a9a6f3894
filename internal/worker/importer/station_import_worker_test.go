package importer_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/config"
	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/pkg/errors"
	"github.com/fuel-route-service/internal/worker/importer"
)

const sampleCSV = `OPIS Truckstop ID,Truckstop Name,Address,City,State,Rack ID,Retail Price
1000,PILOT NEWARK,I-95 EXIT 14,Newark,NJ,305,3.15
1001,FLYING J HARRISBURG,I-81 EXIT 77,Harrisburg,PA,307,2.89
1000,PILOT NEWARK,I-95 EXIT 14,Newark,NJ,305,3.05
1002,TA COLUMBUS,,Columbus,OH,308,not-a-price
,ORPHAN ROW,,Nowhere,XX,309,2.50
`

func TestParseStationsCSV(t *testing.T) {
	stations, err := importer.ParseStationsCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, stations, 2)

	// Duplicate OPIS IDs collapse to the cheapest row
	assert.Equal(t, "1000", stations[0].OPISID)
	assert.InDelta(t, 3.05, stations[0].PricePerGallon, 0.001)
	assert.Equal(t, "PILOT NEWARK", stations[0].Name)
	assert.Equal(t, "Newark", stations[0].City)
	assert.Equal(t, "NJ", stations[0].State)

	assert.Equal(t, "1001", stations[1].OPISID)
	assert.InDelta(t, 2.89, stations[1].PricePerGallon, 0.001)
}

func TestParseStationsCSV_MissingColumn(t *testing.T) {
	_, err := importer.ParseStationsCSV(strings.NewReader("Truckstop Name,City\nPILOT,Newark\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPIS Truckstop ID")
}

type stubStationRepo struct {
	mock.Mock
}

func (m *stubStationRepo) GetInBoundingBox(ctx context.Context, box domain.BoundingBox) ([]*domain.Station, error) {
	args := m.Called(ctx, box)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *stubStationRepo) GetInRadius(ctx context.Context, lat, lon, radiusMiles float64, limit int) ([]*domain.Station, error) {
	args := m.Called(ctx, lat, lon, radiusMiles, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *stubStationRepo) GetPriceStats(ctx context.Context) (*domain.PriceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceStats), args.Error(1)
}

func (m *stubStationRepo) Upsert(ctx context.Context, station *domain.Station) error {
	args := m.Called(ctx, station)
	return args.Error(0)
}

func (m *stubStationRepo) Truncate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type stubGeocoder struct {
	mock.Mock
}

func (m *stubGeocoder) Geocode(ctx context.Context, location string) (*domain.Point, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Point), args.Error(1)
}

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestStationImportWorker_Start(t *testing.T) {
	stationRepo := new(stubStationRepo)
	geocoder := new(stubGeocoder)
	ctx := context.Background()

	point := domain.Point{Lat: 40.7, Lon: -74.2}
	geocoder.On("Geocode", ctx, mock.AnythingOfType("string")).Return(&point, nil)
	stationRepo.On("Truncate", ctx).Return(nil)
	stationRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Station")).Return(nil)

	w := importer.NewStationImportWorker(stationRepo, geocoder, config.ImporterConfig{
		CSVPath:         writeSampleCSV(t),
		GeocodeInterval: time.Millisecond,
		TruncateFirst:   true,
	}, zap.NewNop())

	require.NoError(t, w.Start(ctx))

	stationRepo.AssertCalled(t, "Truncate", ctx)
	stationRepo.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestStationImportWorker_SkipsFailedGeocodes(t *testing.T) {
	stationRepo := new(stubStationRepo)
	geocoder := new(stubGeocoder)
	ctx := context.Background()

	point := domain.Point{Lat: 40.27, Lon: -76.88}
	// Station 1000 fails both the full query and the city fallback
	geocoder.On("Geocode", ctx, "PILOT NEWARK, Newark, NJ").Return(nil, errors.ErrLocationNotFound)
	geocoder.On("Geocode", ctx, "Newark, NJ").Return(nil, errors.ErrLocationNotFound)
	geocoder.On("Geocode", ctx, "FLYING J HARRISBURG, Harrisburg, PA").Return(&point, nil)
	stationRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Station")).Return(nil)

	w := importer.NewStationImportWorker(stationRepo, geocoder, config.ImporterConfig{
		CSVPath:         writeSampleCSV(t),
		GeocodeInterval: time.Millisecond,
	}, zap.NewNop())

	require.NoError(t, w.Start(ctx))
	stationRepo.AssertNumberOfCalls(t, "Upsert", 1)
	stationRepo.AssertNotCalled(t, "Truncate", mock.Anything)
}

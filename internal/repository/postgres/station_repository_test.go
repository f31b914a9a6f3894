package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
	"github.com/fuel-route-service/internal/repository/postgres/testhelpers"
)

// StationRepositoryTestSuite тестирует все методы StationRepository
type StationRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.StationRepository
	ctx    context.Context
}

func (s *StationRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewStationRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *StationRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *StationRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.NoError(s.testDB.Cleanup(s.ctx))

	err := testhelpers.SeedStations(s.ctx, s.testDB.DB.DB, []domain.Station{
		{OPISID: "1001", Name: "Pilot Newark", City: "Newark", State: "NJ", PricePerGallon: 3.15, Lat: 40.7357, Lon: -74.1724},
		{OPISID: "1002", Name: "TA Harrisburg", City: "Harrisburg", State: "PA", PricePerGallon: 2.89, Lat: 40.2732, Lon: -76.8867},
		{OPISID: "1003", Name: "Loves Columbus", City: "Columbus", State: "OH", PricePerGallon: 2.75, Lat: 39.9612, Lon: -82.9988},
		{OPISID: "1004", Name: "Sapp Bros Denver", City: "Denver", State: "CO", PricePerGallon: 3.05, Lat: 39.7392, Lon: -104.9903},
	})
	s.NoError(err, "Failed to seed stations")
}

func (s *StationRepositoryTestSuite) TestGetInBoundingBox_FiltersByCoordinates() {
	// Восточное побережье: Newark и Harrisburg, без Columbus и Denver
	stations, err := s.repo.GetInBoundingBox(s.ctx, domain.BoundingBox{
		MinLat: 39.0, MaxLat: 42.0,
		MinLon: -78.0, MaxLon: -73.0,
	})

	s.NoError(err)
	s.Len(stations, 2)

	// Отсортированы по цене
	s.Equal("TA Harrisburg", stations[0].Name)
	s.Equal("Pilot Newark", stations[1].Name)
}

func (s *StationRepositoryTestSuite) TestGetInBoundingBox_EmptyResult() {
	stations, err := s.repo.GetInBoundingBox(s.ctx, domain.BoundingBox{
		MinLat: 10, MaxLat: 11, MinLon: 10, MaxLon: 11,
	})

	s.NoError(err)
	s.Empty(stations)
}

func (s *StationRepositoryTestSuite) TestGetInRadius_SortsByDistance() {
	// Точка рядом с Harrisburg
	stations, err := s.repo.GetInRadius(s.ctx, 40.27, -76.88, 200, 10)

	s.NoError(err)
	s.NotEmpty(stations)
	s.Equal("TA Harrisburg", stations[0].Name)
}

func (s *StationRepositoryTestSuite) TestGetInRadius_RespectsLimit() {
	stations, err := s.repo.GetInRadius(s.ctx, 40.27, -76.88, 5000, 2)

	s.NoError(err)
	s.Len(stations, 2)
}

func (s *StationRepositoryTestSuite) TestGetPriceStats() {
	stats, err := s.repo.GetPriceStats(s.ctx)

	s.NoError(err)
	s.NotNil(stats)
	s.Equal(4, stats.TotalStations)
	s.Equal(2.75, stats.MinPrice)
	s.Equal(3.15, stats.MaxPrice)
	s.Equal(4, stats.StatesCovered)
	s.InDelta(2.96, stats.AvgPrice, 0.001)
	s.NotZero(stats.LastUpdated)
}

func (s *StationRepositoryTestSuite) TestUpsert_InsertAndUpdate() {
	station := &domain.Station{
		OPISID:         "2001",
		Name:           "Flying J Amarillo",
		City:           "Amarillo",
		State:          "TX",
		PricePerGallon: 2.65,
		Lat:            35.1991,
		Lon:            -101.8451,
	}

	s.NoError(s.repo.Upsert(s.ctx, station))

	count, err := testhelpers.CountStations(s.ctx, s.testDB.DB.DB)
	s.NoError(err)
	s.Equal(5, count)

	// Повторный upsert с новой ценой обновляет, а не дублирует
	station.PricePerGallon = 2.49
	s.NoError(s.repo.Upsert(s.ctx, station))

	count, err = testhelpers.CountStations(s.ctx, s.testDB.DB.DB)
	s.NoError(err)
	s.Equal(5, count)

	stations, err := s.repo.GetInRadius(s.ctx, 35.1991, -101.8451, 5, 1)
	s.NoError(err)
	s.Len(stations, 1)
	s.Equal(2.49, stations[0].PricePerGallon)
}

func (s *StationRepositoryTestSuite) TestTruncate() {
	s.NoError(s.repo.Truncate(s.ctx))

	count, err := testhelpers.CountStations(s.ctx, s.testDB.DB.DB)
	s.NoError(err)
	s.Zero(count)
}

func TestStationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StationRepositoryTestSuite))
}

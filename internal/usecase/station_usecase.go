package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain/repository"
	"github.com/fuel-route-service/internal/pkg/errors"
	"github.com/fuel-route-service/internal/pkg/utils"
	"github.com/fuel-route-service/internal/usecase/dto"
)

// StationUseCase - use case для поиска станций
type StationUseCase struct {
	stationRepo repository.StationRepository
	logger      *zap.Logger
}

// NewStationUseCase - создание нового StationUseCase
func NewStationUseCase(stationRepo repository.StationRepository, logger *zap.Logger) *StationUseCase {
	return &StationUseCase{
		stationRepo: stationRepo,
		logger:      logger,
	}
}

// SearchByRadius - поиск станций в радиусе от точки
func (uc *StationUseCase) SearchByRadius(ctx context.Context, req dto.RadiusStationsRequest) (*dto.RadiusStationsResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadiusMiles(req.RadiusMiles) {
		return nil, errors.ErrInvalidRadius
	}

	if req.Limit == 0 {
		req.Limit = 50
	}

	stations, err := uc.stationRepo.GetInRadius(ctx, req.Lat, req.Lon, req.RadiusMiles, req.Limit)
	if err != nil {
		uc.logger.Error("Failed to search stations by radius", zap.Error(err))
		return nil, err
	}

	results := make([]dto.StationResult, 0, len(stations))
	for _, s := range stations {
		results = append(results, dto.ConvertStation(s, utils.HaversineMiles(req.Lat, req.Lon, s.Lat, s.Lon)))
	}

	return &dto.RadiusStationsResponse{
		Stations: results,
		Total:    len(results),
	}, nil
}

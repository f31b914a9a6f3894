package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
	"github.com/fuel-route-service/internal/pkg/errors"
	"github.com/fuel-route-service/internal/usecase/dto"
)

// milesPerDegree - приближённое число миль в градусе широты,
// используется для расширения bbox коридора
const milesPerDegree = 69.0

// TripUseCase - оркестратор оптимизации поездки: геокодирование,
// маршрутизация, загрузка кандидатов, проекция, оптимизация, сборка ответа
type TripUseCase struct {
	geocodingRepo repository.GeocodingRepository
	routingRepo   repository.RoutingRepository
	stationRepo   repository.StationRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	vehicle       domain.Vehicle
	projection    ProjectionOptions
	tripTTL       time.Duration
	geocodeTTL    time.Duration
}

// NewTripUseCase - создание нового TripUseCase
func NewTripUseCase(
	geocodingRepo repository.GeocodingRepository,
	routingRepo repository.RoutingRepository,
	stationRepo repository.StationRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	vehicle domain.Vehicle,
	projection ProjectionOptions,
	tripTTL time.Duration,
	geocodeTTL time.Duration,
) *TripUseCase {
	return &TripUseCase{
		geocodingRepo: geocodingRepo,
		routingRepo:   routingRepo,
		stationRepo:   stationRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		vehicle:       vehicle,
		projection:    projection,
		tripTTL:       tripTTL,
		geocodeTTL:    geocodeTTL,
	}
}

// OptimizeRoute - полный цикл обработки запроса оптимизации поездки
func (uc *TripUseCase) OptimizeRoute(ctx context.Context, req dto.OptimizeRouteRequest) (*dto.OptimizeRouteResponse, error) {
	start := strings.TrimSpace(req.StartLocation)
	end := strings.TrimSpace(req.EndLocation)
	if start == "" || end == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("start_location and end_location are required")
	}

	// Кеш целиком собранного плана
	cacheKey := tripCacheKey(start, end)
	if cached, err := uc.cacheRepo.GetTrip(ctx, cacheKey); err != nil {
		uc.logger.Warn("Trip cache lookup failed", zap.Error(err))
	} else if cached != nil {
		uc.logger.Debug("Trip cache hit",
			zap.String("start", start),
			zap.String("end", end))
		return dto.ConvertTripPlan(cached), nil
	}

	// 1. Геокодирование (единственная попытка, ретраи - забота клиента)
	startCoords, err := uc.geocodeWithCache(ctx, start)
	if err != nil {
		return nil, err
	}
	endCoords, err := uc.geocodeWithCache(ctx, end)
	if err != nil {
		return nil, err
	}

	// 2. Маршрут
	route, err := uc.routingRepo.GetRoute(ctx, *startCoords, *endCoords)
	if err != nil {
		uc.logger.Error("Failed to get route",
			zap.String("start", start),
			zap.String("end", end),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Route built",
		zap.Float64("distance_miles", route.TotalDistanceMiles),
		zap.Int("geometry_points", len(route.Geometry)))

	// 3. Кандидаты в коридоре маршрута
	corridor := route.Bounds().Expand(uc.projection.MaxDetourMiles / milesPerDegree)
	candidates, err := uc.stationRepo.GetInBoundingBox(ctx, corridor)
	if err != nil {
		return nil, err
	}

	// 4. Проекция на маршрут и оптимизация
	indexed := ProjectStations(route, candidates, uc.projection)
	stops, err := OptimizeRefueling(route.TotalDistanceMiles, indexed, uc.vehicle)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrUnreachableRoute.Code {
			uc.logger.Warn("Route unreachable with vehicle range",
				zap.Float64("distance_miles", route.TotalDistanceMiles),
				zap.Float64("tank_range_miles", uc.vehicle.TankRangeMiles),
				zap.Int("candidate_stations", len(indexed)))
		}
		return nil, err
	}

	// 5. Сборка результата
	plan := assembleTripPlan(route, stops, *startCoords, *endCoords)

	if err := uc.cacheRepo.SetTrip(ctx, cacheKey, plan, uc.tripTTL); err != nil {
		uc.logger.Warn("Failed to cache trip plan", zap.Error(err))
	}

	return dto.ConvertTripPlan(plan), nil
}

// geocodeWithCache - геокодирование с lookaside-кешем; ошибки кеша не фатальны
func (uc *TripUseCase) geocodeWithCache(ctx context.Context, location string) (*domain.Point, error) {
	if point, err := uc.cacheRepo.GetGeocode(ctx, location); err != nil {
		uc.logger.Warn("Geocode cache lookup failed", zap.Error(err))
	} else if point != nil {
		return point, nil
	}

	point, err := uc.geocodingRepo.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetGeocode(ctx, location, *point, uc.geocodeTTL); err != nil {
		uc.logger.Warn("Failed to cache geocode result", zap.Error(err))
	}

	return point, nil
}

// assembleTripPlan собирает итоговый план: суммарная стоимость - точная сумма
// стоимостей остановок, длительность - базовое время маршрута плюс детуры,
// округлённая вверх до минут
func assembleTripPlan(route *domain.Route, stops []domain.FuelStop, start, end domain.Point) *domain.TripPlan {
	totalCost := 0.0
	detourSeconds := 0.0
	for _, s := range stops {
		totalCost += s.CostAtThisStop
		detourSeconds += s.DetourDurationSecs
	}

	return &domain.TripPlan{
		Route:                *route,
		Stops:                stops,
		TotalFuelCostUSD:     math.Round(totalCost*100) / 100,
		TotalDurationMinutes: int(math.Ceil((route.TotalDurationSeconds + detourSeconds) / 60)),
		StartCoords:          start,
		EndCoords:            end,
	}
}

// tripCacheKey - ключ кеша поездки из нормализованных названий локаций.
// Поля хешируются по отдельности, чтобы пары вроде ("a|b", "c") и
// ("a", "b|c") не склеивались в один ключ.
func tripCacheKey(startLocation, endLocation string) string {
	startSum := sha256.Sum256([]byte(strings.ToLower(startLocation)))
	endSum := sha256.Sum256([]byte(strings.ToLower(endLocation)))
	return "trip:" + hex.EncodeToString(startSum[:8]) + hex.EncodeToString(endSum[:8])
}

package openrouteservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/config"
	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
	apperrors "github.com/fuel-route-service/internal/pkg/errors"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	profile    string
	logger     *zap.Logger
}

// NewClient создает новый клиент для OpenRouteService Directions API
func NewClient(cfg *config.RoutingConfig, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		profile: cfg.Profile,
		logger:  logger,
	}
}

type directionsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Units        string      `json:"units"`
	Instructions bool        `json:"instructions"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// GetRoute строит маршрут через /v2/directions/{profile}/geojson.
// Расстояние запрашивается в милях, длительность приходит в секундах.
func (c *client) GetRoute(ctx context.Context, start, end domain.Point) (*domain.Route, error) {
	// ORS принимает координаты как [lon, lat]
	reqBody := directionsRequest{
		Coordinates: [][]float64{
			{start.Lon, start.Lat},
			{end.Lon, end.Lat},
		},
		Units:        "mi",
		Instructions: false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v2/directions/%s/geojson", c.baseURL, c.profile)

	c.logger.Debug("Calling ORS Directions API",
		zap.Float64("start_lat", start.Lat),
		zap.Float64("start_lon", start.Lon),
		zap.Float64("end_lat", end.Lat),
		zap.Float64("end_lon", end.Lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, apperrors.ClassifyUpstream(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("ORS API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))

		// ORS отвечает 404 (routable point not found) когда пути нет
		if resp.StatusCode == http.StatusNotFound {
			return nil, apperrors.ErrRouteNotFound
		}
		return nil, apperrors.ErrUpstreamUnavailable
	}

	var directions directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(directions.Features) == 0 {
		c.logger.Warn("ORS returned no routes")
		return nil, apperrors.ErrRouteNotFound
	}

	feature := directions.Features[0]

	// Геометрия приходит парами [lon, lat] - переворачиваем в [lat, lon]
	geometry := make([]domain.Point, 0, len(feature.Geometry.Coordinates))
	for _, coord := range feature.Geometry.Coordinates {
		if len(coord) < 2 {
			continue
		}
		geometry = append(geometry, domain.Point{Lat: coord[1], Lon: coord[0]})
	}

	if len(geometry) < 2 {
		c.logger.Warn("ORS returned degenerate geometry",
			zap.Int("points", len(geometry)))
		return nil, apperrors.ErrRouteNotFound
	}

	route := &domain.Route{
		Geometry:             geometry,
		TotalDistanceMiles:   feature.Properties.Summary.Distance,
		TotalDurationSeconds: feature.Properties.Summary.Duration,
	}

	c.logger.Debug("ORS Directions API call successful",
		zap.Int("geometry_points", len(route.Geometry)),
		zap.Float64("distance_miles", route.TotalDistanceMiles))

	return route, nil
}

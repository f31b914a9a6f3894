package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/config"
	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
	apperrors "github.com/fuel-route-service/internal/pkg/errors"
)

type client struct {
	httpClient   *http.Client
	baseURL      string
	userAgent    string
	countryCodes string
	logger       *zap.Logger
}

// NewClient создает новый клиент для Nominatim API
func NewClient(cfg *config.GeocodeConfig, logger *zap.Logger) repository.GeocodingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:      cfg.BaseURL,
		userAgent:    cfg.UserAgent,
		countryCodes: cfg.CountryCodes,
		logger:       logger,
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode преобразует название локации в координаты через /search
func (c *client) Geocode(ctx context.Context, location string) (*domain.Point, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("format", "json")
	q.Set("limit", "1")
	if c.countryCodes != "" {
		q.Set("countrycodes", c.countryCodes)
	}

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, q.Encode())

	c.logger.Debug("Calling Nominatim search API", zap.String("location", location))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, apperrors.ClassifyUpstream(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperrors.ErrUpstreamUnavailable
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 {
		c.logger.Warn("Geocoding returned no results", zap.String("location", location))
		return nil, apperrors.ErrLocationNotFound.WithDetails(map[string]interface{}{
			"location": location,
		})
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in response: %w", err)
	}

	c.logger.Debug("Geocoding successful",
		zap.String("location", location),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	return &domain.Point{Lat: lat, Lon: lon}, nil
}

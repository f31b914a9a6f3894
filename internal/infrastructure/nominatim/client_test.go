package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/config"
	apperrors "github.com/fuel-route-service/internal/pkg/errors"
)

func TestClient_Geocode(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "New York, NY", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "us", r.URL.Query().Get("countrycodes"))
			assert.Equal(t, "fuel-route-service-test", r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"lat":"40.7127281","lon":"-74.0060152","display_name":"New York"}]`))
		}))
		defer server.Close()

		client := NewClient(&config.GeocodeConfig{
			BaseURL:        server.URL,
			UserAgent:      "fuel-route-service-test",
			CountryCodes:   "us",
			RequestTimeout: 5 * time.Second,
		}, logger)

		point, err := client.Geocode(context.Background(), "New York, NY")
		require.NoError(t, err)
		require.NotNil(t, point)
		assert.InDelta(t, 40.7127281, point.Lat, 1e-9)
		assert.InDelta(t, -74.0060152, point.Lon, 1e-9)
	})

	t.Run("no results maps to location not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(&config.GeocodeConfig{
			BaseURL:        server.URL,
			UserAgent:      "test",
			RequestTimeout: 5 * time.Second,
		}, logger)

		point, err := client.Geocode(context.Background(), "Nowhereville, ZZ")
		assert.Nil(t, point)
		require.Error(t, err)

		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrLocationNotFound.Code, appErr.Code)
	})

	t.Run("upstream 5xx maps to unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(&config.GeocodeConfig{
			BaseURL:        server.URL,
			UserAgent:      "test",
			RequestTimeout: 5 * time.Second,
		}, logger)

		_, err := client.Geocode(context.Background(), "Denver, CO")
		assert.Equal(t, apperrors.ErrUpstreamUnavailable, err)
	})

	t.Run("timeout maps to upstream timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(&config.GeocodeConfig{
			BaseURL:        server.URL,
			UserAgent:      "test",
			RequestTimeout: 20 * time.Millisecond,
		}, logger)

		_, err := client.Geocode(context.Background(), "Denver, CO")
		assert.Equal(t, apperrors.ErrUpstreamTimeout, err)
	})
}

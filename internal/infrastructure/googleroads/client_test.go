package googleroads

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/discovery-microservice/internal/config"
	"github.com/discovery-microservice/internal/domain"
)

func TestClient_SnapBatch(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/snapToRoads", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("interpolate"))
			assert.NotEmpty(t, r.URL.Query().Get("path"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"snappedPoints": [
					{"location": {"latitude": 41.38512, "longitude": 2.17341}, "originalIndex": 0, "placeId": "road1"},
					{"location": {"latitude": 41.38550, "longitude": 2.17380}, "placeId": "road1"},
					{"location": {"latitude": 41.38601, "longitude": 2.17432}, "originalIndex": 1, "placeId": "road2"}
				]
			}`))
		}))
		defer server.Close()

		cfg := &config.GoogleRoadsConfig{
			APIKey:         "test_key",
			BaseURL:        server.URL,
			RequestTimeout: 30,
		}

		client := NewRoadsClient(cfg, logger)

		points := []domain.Coordinate{
			{Lat: 41.38510, Lon: 2.17340},
			{Lat: 41.38600, Lon: 2.17430},
		}

		snapped, status, err := client.SnapBatch(context.Background(), points)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		// Интерполяция может вернуть больше точек, чем на входе
		require.Len(t, snapped, 3)
		assert.InDelta(t, 41.38512, snapped[0].Lat, 1e-9)
		assert.InDelta(t, 2.17341, snapped[0].Lon, 1e-9)
	})

	t.Run("empty points", func(t *testing.T) {
		cfg := &config.GoogleRoadsConfig{
			APIKey:         "test_key",
			BaseURL:        "https://roads.googleapis.com/v1",
			RequestTimeout: 30,
		}

		client := NewRoadsClient(cfg, logger)

		snapped, _, err := client.SnapBatch(context.Background(), nil)
		assert.Error(t, err)
		assert.Nil(t, snapped)
	})

	t.Run("exceeds batch limit", func(t *testing.T) {
		cfg := &config.GoogleRoadsConfig{
			APIKey:         "test_key",
			BaseURL:        "https://roads.googleapis.com/v1",
			RequestTimeout: 30,
		}

		client := NewRoadsClient(cfg, logger)

		points := make([]domain.Coordinate, 101)
		for i := range points {
			points[i] = domain.Coordinate{Lat: 41.38, Lon: 2.17}
		}

		snapped, _, err := client.SnapBatch(context.Background(), points)
		assert.Error(t, err)
		assert.Nil(t, snapped)
		assert.Contains(t, err.Error(), "limit")
	})

	t.Run("api error returns status code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"status": "RESOURCE_EXHAUSTED"}}`))
		}))
		defer server.Close()

		cfg := &config.GoogleRoadsConfig{
			APIKey:         "test_key",
			BaseURL:        server.URL,
			RequestTimeout: 30,
		}

		client := NewRoadsClient(cfg, logger)

		snapped, status, err := client.SnapBatch(context.Background(), []domain.Coordinate{{Lat: 41.38, Lon: 2.17}})
		assert.Error(t, err)
		assert.Nil(t, snapped)
		assert.Equal(t, http.StatusTooManyRequests, status)
	})
}

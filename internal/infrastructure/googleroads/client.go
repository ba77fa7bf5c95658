package googleroads

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/discovery-microservice/internal/config"
	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// maxBatchPoints - лимит Roads API на число точек в одном запросе
const maxBatchPoints = 100

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewRoadsClient создает новый клиент для Google Roads API
func NewRoadsClient(cfg *config.GoogleRoadsConfig, logger *zap.Logger) repository.RoadsRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type snapToRoadsResponse struct {
	SnappedPoints []snappedPoint `json:"snappedPoints"`
}

type snappedPoint struct {
	Location      snappedLocation `json:"location"`
	OriginalIndex *int            `json:"originalIndex,omitempty"`
	PlaceID       string          `json:"placeId,omitempty"`
}

type snappedLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SnapBatch привязывает пачку точек к дорожной сети с интерполяцией
func (c *client) SnapBatch(ctx context.Context, points []domain.Coordinate) ([]domain.Coordinate, int, error) {
	if len(points) == 0 {
		return nil, 0, fmt.Errorf("points cannot be empty")
	}
	if len(points) > maxBatchPoints {
		return nil, 0, fmt.Errorf("batch exceeds Roads API limit of %d points", maxBatchPoints)
	}

	pathParts := make([]string, len(points))
	for i, p := range points {
		pathParts[i] = fmt.Sprintf("%f,%f", p.Lat, p.Lon)
	}

	params := url.Values{}
	params.Set("path", strings.Join(pathParts, "|"))
	params.Set("interpolate", "true")
	params.Set("key", c.apiKey)

	reqURL := c.baseURL + "/snapToRoads?" + params.Encode()

	c.logger.Debug("Calling Roads snapToRoads API",
		zap.Int("points", len(points)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Roads API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, resp.StatusCode, fmt.Errorf("roads API error: status %d", resp.StatusCode)
	}

	var snapResp snapToRoadsResponse
	if err := json.NewDecoder(resp.Body).Decode(&snapResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}

	snapped := make([]domain.Coordinate, 0, len(snapResp.SnappedPoints))
	for _, sp := range snapResp.SnappedPoints {
		snapped = append(snapped, domain.Coordinate{
			Lat: sp.Location.Latitude,
			Lon: sp.Location.Longitude,
		})
	}

	c.logger.Debug("Roads snapToRoads API call successful",
		zap.Int("input_points", len(points)),
		zap.Int("snapped_points", len(snapped)))

	return snapped, resp.StatusCode, nil
}

package googleplaces

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/discovery-microservice/internal/config"
	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// searchTextFieldMask - поля, запрашиваемые у Places API (New)
const searchTextFieldMask = "places.id,places.displayName,places.types,places.primaryType," +
	"places.rating,places.userRatingCount,places.location,places.formattedAddress," +
	"places.editorialSummary,places.photos"

type client struct {
	httpClient    *http.Client
	baseURL       string
	legacyBaseURL string
	apiKey        string
	logger        *zap.Logger
}

// NewPlacesClient создает новый клиент для Google Places API
func NewPlacesClient(cfg *config.GooglePlacesConfig, logger *zap.Logger) repository.PlacesRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:       cfg.BaseURL,
		legacyBaseURL: cfg.LegacyBaseURL,
		apiKey:        cfg.APIKey,
		logger:        logger,
	}
}

// searchTextRequest - тело запроса places:searchText
type searchTextRequest struct {
	TextQuery                 string                     `json:"textQuery"`
	LanguageCode              string                     `json:"languageCode,omitempty"`
	PageSize                  int                        `json:"pageSize,omitempty"`
	SearchAlongRouteParameter *searchAlongRouteParameter `json:"searchAlongRouteParameters,omitempty"`
}

type searchAlongRouteParameter struct {
	Polyline encodedPolyline `json:"polyline"`
}

type encodedPolyline struct {
	EncodedPolyline string `json:"encodedPolyline"`
}

type searchTextResponse struct {
	Places []placeV1 `json:"places"`
}

type placeV1 struct {
	ID          string       `json:"id"`
	DisplayName *displayName `json:"displayName,omitempty"`
	Types       []string     `json:"types,omitempty"`
	PrimaryType string       `json:"primaryType,omitempty"`
	Rating      *float64     `json:"rating,omitempty"`
	RatingCount int          `json:"userRatingCount,omitempty"`
	Location    *latLng      `json:"location,omitempty"`
	Address     string       `json:"formattedAddress,omitempty"`
	Editorial   *displayName `json:"editorialSummary,omitempty"`
	Photos      []photoV1    `json:"photos,omitempty"`
}

type displayName struct {
	Text string `json:"text"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type photoV1 struct {
	Name     string `json:"name"`
	WidthPx  int    `json:"widthPx"`
	HeightPx int    `json:"heightPx"`
}

// SearchAlongRoute выполняет searchText с параметрами поиска вдоль маршрута
func (c *client) SearchAlongRoute(
	ctx context.Context,
	query string,
	encoded string,
	language string,
	maxResults int,
) ([]domain.ProviderResult, error) {
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	if encoded == "" {
		return nil, fmt.Errorf("encoded polyline cannot be empty")
	}

	reqBody := searchTextRequest{
		TextQuery:    query,
		LanguageCode: language,
		PageSize:     maxResults,
		SearchAlongRouteParameter: &searchAlongRouteParameter{
			Polyline: encodedPolyline{EncodedPolyline: encoded},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := c.baseURL + "/places:searchText"

	c.logger.Debug("Calling Places searchText API",
		zap.String("query", query),
		zap.Int("polyline_len", len(encoded)),
		zap.Int("max_results", maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", searchTextFieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Places API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Errorf("places API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var searchResp searchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]domain.ProviderResult, 0, len(searchResp.Places))
	for _, p := range searchResp.Places {
		results = append(results, convertPlaceV1(p))
	}

	c.logger.Debug("Places searchText API call successful",
		zap.Int("results", len(results)))

	return results, nil
}

// legacyNearbyResponse - ответ старого nearbysearch API
type legacyNearbyResponse struct {
	Results []legacyPlaceResult `json:"results"`
	Status  string              `json:"status"`
}

type legacyPlaceResult struct {
	PlaceID          string         `json:"place_id"`
	Name             string         `json:"name"`
	Types            []string       `json:"types"`
	Rating           *float64       `json:"rating,omitempty"`
	UserRatingsTotal int            `json:"user_ratings_total,omitempty"`
	Geometry         legacyGeometry `json:"geometry"`
	Vicinity         string         `json:"vicinity,omitempty"`
	Photos           []legacyPhoto  `json:"photos,omitempty"`
}

type legacyGeometry struct {
	Location legacyLocation `json:"location"`
}

type legacyLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type legacyPhoto struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// SearchNearby выполняет поиск одного типа вокруг точки через nearbysearch
func (c *client) SearchNearby(
	ctx context.Context,
	lat, lon float64,
	radiusMeters int,
	typeKey string,
	maxResults int,
) ([]domain.ProviderResult, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lon))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("type", typeKey)
	params.Set("key", c.apiKey)

	reqURL := c.legacyBaseURL + "/place/nearbysearch/json?" + params.Encode()

	c.logger.Debug("Calling Places nearbysearch API",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Int("radius", radiusMeters),
		zap.String("type", typeKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Places nearbysearch returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Errorf("places API error: status %d", resp.StatusCode)
	}

	var nearbyResp legacyNearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&nearbyResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if nearbyResp.Status != "OK" && nearbyResp.Status != "ZERO_RESULTS" {
		c.logger.Error("Places nearbysearch returned non-OK status",
			zap.String("status", nearbyResp.Status))
		return nil, fmt.Errorf("places API returned status: %s", nearbyResp.Status)
	}

	if maxResults > 0 && len(nearbyResp.Results) > maxResults {
		nearbyResp.Results = nearbyResp.Results[:maxResults]
	}

	results := make([]domain.ProviderResult, 0, len(nearbyResp.Results))
	for _, r := range nearbyResp.Results {
		results = append(results, convertLegacyResult(r, typeKey))
	}

	c.logger.Debug("Places nearbysearch API call successful",
		zap.String("type", typeKey),
		zap.Int("results", len(results)))

	return results, nil
}

func convertPlaceV1(p placeV1) domain.ProviderResult {
	result := domain.ProviderResult{
		PlaceID:     p.ID,
		Types:       p.Types,
		PrimaryType: p.PrimaryType,
		Rating:      p.Rating,
		ReviewCount: p.RatingCount,
		Address:     p.Address,
		Source:      domain.SourceRouteSearch,
	}
	if p.DisplayName != nil {
		result.Name = p.DisplayName.Text
	}
	if p.Editorial != nil {
		result.Description = p.Editorial.Text
	}
	if p.Location != nil {
		result.Lat = p.Location.Latitude
		result.Lon = p.Location.Longitude
	}
	for _, photo := range p.Photos {
		result.Photos = append(result.Photos, domain.PhotoRef{
			Reference: photo.Name,
			Width:     photo.WidthPx,
			Height:    photo.HeightPx,
		})
	}
	return result
}

func convertLegacyResult(r legacyPlaceResult, typeKey string) domain.ProviderResult {
	result := domain.ProviderResult{
		PlaceID:     r.PlaceID,
		Name:        r.Name,
		Types:       r.Types,
		Rating:      r.Rating,
		ReviewCount: r.UserRatingsTotal,
		Lat:         r.Geometry.Location.Lat,
		Lon:         r.Geometry.Location.Lng,
		Address:     r.Vicinity,
		Source:      domain.SourceCenterPointSearch,
	}
	// nearbysearch не возвращает primaryType - берем тип, по которому искали
	if typeKey != "" {
		result.PrimaryType = typeKey
	} else if len(r.Types) > 0 {
		result.PrimaryType = r.Types[0]
	}
	for _, photo := range r.Photos {
		result.Photos = append(result.Photos, domain.PhotoRef{
			Reference: photo.PhotoReference,
			Width:     photo.Width,
			Height:    photo.Height,
		})
	}
	return result
}

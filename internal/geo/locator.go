package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/courierhq/quoteapi/internal/domain"
)

// Locator supplies the customer's coordinate on demand. Implementations may
// fail with permission, availability or timeout conditions; callers treat any
// failure as "no coordinate supplied".
type Locator interface {
	Locate(ctx context.Context) (domain.Coordinate, error)
}

// IPLocator resolves an approximate coordinate from the caller's public IP
// address using an ip-api style JSON endpoint.
type IPLocator struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewIPLocator creates an IP-based locator
func NewIPLocator(baseURL string, logger *zap.Logger) *IPLocator {
	return &IPLocator{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type ipLocateResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Locate queries the IP geolocation endpoint. Accuracy is city-level at best,
// which is good enough for a delivery distance estimate.
func (l *IPLocator) Locate(ctx context.Context) (domain.Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/json", nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinate{}, fmt.Errorf("geolocation API error: status %d", resp.StatusCode)
	}

	var body ipLocateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Coordinate{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if body.Status != "success" {
		return domain.Coordinate{}, fmt.Errorf("geolocation failed: %s", body.Message)
	}

	l.logger.Debug("resolved coordinate from IP",
		zap.Float64("lat", body.Lat),
		zap.Float64("lon", body.Lon),
	)
	return domain.Coordinate{Lat: body.Lat, Lon: body.Lon}, nil
}

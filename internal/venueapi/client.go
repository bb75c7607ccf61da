package venueapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/courierhq/quoteapi/internal/config"
)

// Client defines the venue API operations the quote engine consumes.
type Client interface {
	GetStatic(ctx context.Context, venueSlug string) (StaticVenue, error)
	GetDynamic(ctx context.Context, venueSlug string) (DynamicVenue, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new venue API client
func NewClient(cfg config.VenueAPIConfig, logger *zap.Logger) Client {
	// Normalize base URL - remove trailing slashes
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetStatic fetches the venue's location from the static sub-resource.
func (c *client) GetStatic(ctx context.Context, venueSlug string) (StaticVenue, error) {
	var env staticEnvelope
	if err := c.get(ctx, venueSlug, "static", &env); err != nil {
		return StaticVenue{}, err
	}
	if len(env.VenueRaw.Location.Coordinates) < 2 {
		return StaticVenue{}, fmt.Errorf("static payload for %q has no coordinates", venueSlug)
	}
	return env.VenueRaw, nil
}

// GetDynamic fetches the venue's delivery pricing from the dynamic sub-resource.
func (c *client) GetDynamic(ctx context.Context, venueSlug string) (DynamicVenue, error) {
	var env dynamicEnvelope
	if err := c.get(ctx, venueSlug, "dynamic", &env); err != nil {
		return DynamicVenue{}, err
	}
	return env.VenueRaw, nil
}

func (c *client) get(ctx context.Context, venueSlug, resource string, out any) error {
	url := fmt.Sprintf("%s/venues/%s/%s", c.baseURL, venueSlug, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("venue API returned non-200",
			zap.String("venue_slug", venueSlug),
			zap.String("resource", resource),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("venue API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", resource, err)
	}
	return nil
}

package venueapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/courierhq/quoteapi/internal/config"
)

// Payloads mirror the real venue API: envelopes carry many fields the quote
// engine does not care about, including the per-range "flag".
const staticPayload = `{
  "venue_raw": {
    "id": "5ae59dcc8fe9fc00368a6c24",
    "name": "Test venue (Helsinki)",
    "location": {
      "coordinates": [24.92813512, 60.17012143]
    },
    "opening_hours": {"monday": []}
  }
}`

const dynamicPayload = `{
  "venue_raw": {
    "id": "5ae59dcc8fe9fc00368a6c24",
    "delivery_specs": {
      "order_minimum_no_surcharge": 1000,
      "delivery_pricing": {
        "pricing_type": "distance_base_price",
        "base_price": 190,
        "distance_ranges": [
          {"min": 0, "max": 500, "a": 0, "b": 0, "flag": null},
          {"min": 500, "max": 1000, "a": 100, "b": 1, "flag": null},
          {"min": 1000, "max": 0, "a": 0, "b": 0, "flag": null}
        ]
      }
    }
  }
}`

func newTestClient(t *testing.T, handler http.Handler) (Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	c := NewClient(config.VenueAPIConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, zap.NewNop())
	return c, srv.Close
}

func TestGetStatic(t *testing.T) {
	c, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/venues/test-venue/static" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(staticPayload))
	}))
	defer done()

	v, err := c.GetStatic(context.Background(), "test-venue")
	if err != nil {
		t.Fatalf("GetStatic error: %v", err)
	}
	// GeoJSON order: [lon, lat]
	if v.Location.Coordinates[0] != 24.92813512 || v.Location.Coordinates[1] != 60.17012143 {
		t.Fatalf("unexpected coordinates: %v", v.Location.Coordinates)
	}
}

func TestGetStaticMissingCoordinates(t *testing.T) {
	c, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"venue_raw": {"location": {}}}`))
	}))
	defer done()

	if _, err := c.GetStatic(context.Background(), "test-venue"); err == nil {
		t.Fatal("expected error for payload without coordinates")
	}
}

func TestGetDynamic(t *testing.T) {
	c, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/venues/test-venue/dynamic" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(dynamicPayload))
	}))
	defer done()

	v, err := c.GetDynamic(context.Background(), "test-venue")
	if err != nil {
		t.Fatalf("GetDynamic error: %v", err)
	}
	if v.DeliverySpecs.OrderMinimumNoSurcharge != 1000 {
		t.Fatalf("unexpected order minimum: %d", v.DeliverySpecs.OrderMinimumNoSurcharge)
	}
	if v.DeliverySpecs.DeliveryPricing.BasePrice != 190 {
		t.Fatalf("unexpected base price: %d", v.DeliverySpecs.DeliveryPricing.BasePrice)
	}
	ranges := v.DeliverySpecs.DeliveryPricing.DistanceRanges
	if len(ranges) != 3 {
		t.Fatalf("expected 3 ranges, got %d", len(ranges))
	}
	// Supplied order must be preserved, not re-sorted.
	if ranges[1].Min != 500 || ranges[1].Max != 1000 || ranges[1].A != 100 || ranges[1].B != 1 {
		t.Fatalf("unexpected second range: %+v", ranges[1])
	}
}

func TestGetDynamicUpstreamError(t *testing.T) {
	c, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "No venue with this slug"}`, http.StatusNotFound)
	}))
	defer done()

	if _, err := c.GetDynamic(context.Background(), "no-such-venue"); err == nil {
		t.Fatal("expected error for 404")
	}
}

package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/courierhq/quoteapi/internal/domain"
	"github.com/courierhq/quoteapi/internal/geo"
	"github.com/courierhq/quoteapi/internal/venueapi"
	"github.com/courierhq/quoteapi/pkg/errors"
)

type QuoteService struct {
	venues venueapi.Client
	logger *zap.Logger
}

// NewQuoteService creates a new quote service
func NewQuoteService(venues venueapi.Client, logger *zap.Logger) *QuoteService {
	return &QuoteService{
		venues: venues,
		logger: logger,
	}
}

// Quote computes the delivery price breakdown for one request. The venue
// pricing snapshot is fetched fresh per call and never cached; given the same
// request and the same snapshot the result is identical.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) (*domain.QuoteResult, error) {
	state := domain.QuoteStateIdle
	state = s.transition(state, domain.QuoteStateValidating)

	userLoc, err := s.validate(req)
	if err != nil {
		s.transition(state, domain.QuoteStateFailed)
		return nil, err
	}

	state = s.transition(state, domain.QuoteStateFetchingVenue)
	venue, err := s.fetchVenuePricing(ctx, req.VenueSlug)
	if err != nil {
		s.transition(state, domain.QuoteStateFailed)
		return nil, &errors.ErrVenueUnavailable{Slug: req.VenueSlug, Err: err}
	}
	if len(venue.DistanceTiers) == 0 {
		s.transition(state, domain.QuoteStateFailed)
		return nil, &errors.ErrVenueUnavailable{Slug: req.VenueSlug}
	}

	state = s.transition(state, domain.QuoteStateComputing)

	rawDistance := geo.Distance(userLoc.Lat, userLoc.Lon, venue.Location.Lat, venue.Location.Lon)
	deliveryDistance := int(math.Ceil(rawDistance))

	fee, err := deliveryFee(deliveryDistance, venue.DistanceTiers, venue.BasePrice)
	if err != nil {
		s.transition(state, domain.QuoteStateFailed)
		return nil, err
	}

	cartValue, err := parseCartValue(req.CartValue)
	if err != nil {
		s.transition(state, domain.QuoteStateFailed)
		return nil, err
	}

	surcharge := venue.OrderMinimumNoSurcharge - cartValue
	if surcharge < 0 {
		surcharge = 0
	}

	s.transition(state, domain.QuoteStateDone)
	return &domain.QuoteResult{
		CartValue:           cartValue,
		SmallOrderSurcharge: surcharge,
		DeliveryFee:         fee,
		DeliveryDistance:    deliveryDistance,
		TotalPrice:          cartValue + surcharge + fee,
	}, nil
}

// validate enforces presence of all four inputs and parses the customer
// coordinate. NaN, infinities and out-of-range values all surface as
// ErrInvalidCoordinate rather than leaking into the distance math.
func (s *QuoteService) validate(req QuoteRequest) (domain.Coordinate, error) {
	var missing []string
	if strings.TrimSpace(req.VenueSlug) == "" {
		missing = append(missing, "venue_slug")
	}
	if strings.TrimSpace(req.CartValue) == "" {
		missing = append(missing, "cart_value")
	}
	if strings.TrimSpace(req.UserLat) == "" {
		missing = append(missing, "user_lat")
	}
	if strings.TrimSpace(req.UserLon) == "" {
		missing = append(missing, "user_lon")
	}
	if len(missing) > 0 {
		return domain.Coordinate{}, &errors.ErrMissingField{Fields: missing}
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(req.UserLat), 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return domain.Coordinate{}, &errors.ErrInvalidCoordinate{Field: "user_lat", Value: req.UserLat}
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(req.UserLon), 64)
	if err != nil || math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return domain.Coordinate{}, &errors.ErrInvalidCoordinate{Field: "user_lon", Value: req.UserLon}
	}

	return domain.Coordinate{Lat: lat, Lon: lon}, nil
}

// fetchVenuePricing assembles an immutable pricing snapshot from the venue
// API's static and dynamic sub-resources, fetched concurrently.
func (s *QuoteService) fetchVenuePricing(ctx context.Context, venueSlug string) (*domain.VenuePricing, error) {
	slug := strings.TrimSpace(venueSlug)

	type staticRes struct {
		v   venueapi.StaticVenue
		err error
	}
	type dynamicRes struct {
		v   venueapi.DynamicVenue
		err error
	}
	staticCh := make(chan staticRes, 1)
	dynamicCh := make(chan dynamicRes, 1)

	go func() {
		v, err := s.venues.GetStatic(ctx, slug)
		staticCh <- staticRes{v: v, err: err}
	}()
	go func() {
		v, err := s.venues.GetDynamic(ctx, slug)
		dynamicCh <- dynamicRes{v: v, err: err}
	}()

	sr := <-staticCh
	dr := <-dynamicCh
	if sr.err != nil {
		return nil, sr.err
	}
	if dr.err != nil {
		return nil, dr.err
	}

	pricing := &domain.VenuePricing{
		Location: domain.Coordinate{
			// Wire order is GeoJSON [longitude, latitude].
			Lon: sr.v.Location.Coordinates[0],
			Lat: sr.v.Location.Coordinates[1],
		},
		BasePrice:               dr.v.DeliverySpecs.DeliveryPricing.BasePrice,
		OrderMinimumNoSurcharge: dr.v.DeliverySpecs.OrderMinimumNoSurcharge,
	}
	for _, r := range dr.v.DeliverySpecs.DeliveryPricing.DistanceRanges {
		pricing.DistanceTiers = append(pricing.DistanceTiers, domain.DistanceTier{
			Min: r.Min,
			Max: r.Max,
			A:   r.A,
			B:   r.B,
		})
	}
	return pricing, nil
}

// parseCartValue converts a decimal major-units string to integer cents,
// rounding half up. Exact decimal arithmetic avoids float drift on inputs
// like "10.55".
func parseCartValue(raw string) (int, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || value.IsNegative() {
		return 0, &errors.ErrInvalidCartValue{Value: raw}
	}
	cents := value.Mul(decimal.NewFromInt(100)).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0, &errors.ErrInvalidCartValue{Value: raw}
	}
	return int(cents.IntPart()), nil
}

func (s *QuoteService) transition(from, to domain.QuoteState) domain.QuoteState {
	if !from.CanTransitionTo(to) {
		s.logger.Warn("invalid quote state transition",
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return from
	}
	s.logger.Debug("quote state transition",
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	return to
}

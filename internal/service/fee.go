package service

import (
	"math"

	"github.com/courierhq/quoteapi/internal/domain"
	"github.com/courierhq/quoteapi/pkg/errors"
)

// deliveryFee maps a rounded distance to a fee in cents using the venue's
// tier table. Tiers are scanned in supplied order; the first structural match
// wins. A sentinel tier (Max == 0), a gap between tiers, or an empty table
// all mean delivery is unavailable.
func deliveryFee(distanceMeters int, tiers []domain.DistanceTier, basePrice int) (int, error) {
	for _, tier := range tiers {
		if !tier.Contains(distanceMeters) {
			continue
		}
		if !tier.Deliverable() {
			return 0, &errors.ErrDeliveryUnavailable{DistanceMeters: distanceMeters}
		}
		variable := math.Round(float64(tier.B) * float64(distanceMeters) / 10.0)
		return basePrice + tier.A + int(variable), nil
	}
	return 0, &errors.ErrDeliveryUnavailable{DistanceMeters: distanceMeters}
}

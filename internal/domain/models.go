package domain

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// DistanceTier describes one band of the piecewise delivery fee function.
// Tiers are evaluated in the order the venue supplies them; the first tier
// whose [Min, Max) contains the distance wins.
type DistanceTier struct {
	Min int // meters, inclusive
	Max int // meters, exclusive; 0 means no delivery at or beyond Min
	A   int // flat surcharge in cents
	B   int // cents per 10 meters
}

// Contains reports whether distanceMeters falls inside this tier's band.
// A sentinel tier (Max == 0) contains every distance at or beyond Min.
func (t DistanceTier) Contains(distanceMeters int) bool {
	return distanceMeters >= t.Min && (t.Max == 0 || distanceMeters < t.Max)
}

// Deliverable reports whether this tier prices a delivery at all.
func (t DistanceTier) Deliverable() bool {
	return t.Max != 0
}

// VenuePricing is an immutable snapshot of a venue's location and pricing
// schedule, fetched fresh for each quote.
type VenuePricing struct {
	Location                Coordinate
	BasePrice               int // cents
	OrderMinimumNoSurcharge int // cents
	DistanceTiers           []DistanceTier
}

// QuoteResult is the price breakdown for one quote. All monetary fields are
// integer cents; TotalPrice is exactly CartValue + SmallOrderSurcharge +
// DeliveryFee.
type QuoteResult struct {
	CartValue           int `json:"cart_value"`
	SmallOrderSurcharge int `json:"small_order_surcharge"`
	DeliveryFee         int `json:"delivery_fee"`
	DeliveryDistance    int `json:"delivery_distance"` // meters, rounded up
	TotalPrice          int `json:"total_price"`
}

package venueapi

// The venue API exposes two sub-resources per venue slug: /static carries the
// venue location, /dynamic carries the delivery pricing schedule. Payloads
// include many fields beyond these; unknown fields are ignored on decode.

// StaticVenue holds the fields the quote engine needs from the static endpoint.
type StaticVenue struct {
	Location struct {
		// Coordinates are GeoJSON-ordered: [longitude, latitude].
		Coordinates []float64 `json:"coordinates"`
	} `json:"location"`
}

// DistanceRange is one entry of the venue's distance_ranges table. An
// optional "flag" field exists on the wire and is deliberately not modeled.
type DistanceRange struct {
	Min int `json:"min"`
	Max int `json:"max"` // exclusive; 0 means no delivery at or beyond Min
	A   int `json:"a"`
	B   int `json:"b"`
}

// DynamicVenue holds the fields the quote engine needs from the dynamic endpoint.
type DynamicVenue struct {
	DeliverySpecs struct {
		OrderMinimumNoSurcharge int `json:"order_minimum_no_surcharge"`
		DeliveryPricing         struct {
			BasePrice      int             `json:"base_price"`
			DistanceRanges []DistanceRange `json:"distance_ranges"`
		} `json:"delivery_pricing"`
	} `json:"delivery_specs"`
}

type staticEnvelope struct {
	VenueRaw StaticVenue `json:"venue_raw"`
}

type dynamicEnvelope struct {
	VenueRaw DynamicVenue `json:"venue_raw"`
}

package service

// QuoteRequest carries the raw user input for one quote attempt. All fields
// arrive as strings; the quote service owns parsing and validation.
type QuoteRequest struct {
	VenueSlug string `form:"venue_slug"`
	CartValue string `form:"cart_value"` // decimal major units, e.g. "10.55"
	UserLat   string `form:"user_lat"`
	UserLon   string `form:"user_lon"`
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/courierhq/quoteapi/internal/config"
	"github.com/courierhq/quoteapi/internal/geo"
	"github.com/courierhq/quoteapi/internal/service"
	"github.com/courierhq/quoteapi/internal/venueapi"
)

func main() {
	if len(os.Args) != 3 && len(os.Args) != 5 {
		fmt.Println("Usage: go run cmd/quote/main.go <venue-slug> <cart-value> [<lat> <lon>]")
		fmt.Println("Example: go run cmd/quote/main.go home-assignment-venue-helsinki 10.55 60.17094 24.93087")
		fmt.Println("Without <lat> <lon> the location is approximated from your public IP.")
		os.Exit(1)
	}

	venueSlug := os.Args[1]
	cartValue := os.Args[2]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var lat, lon string
	if len(os.Args) == 5 {
		lat, lon = os.Args[3], os.Args[4]
	} else {
		locator := geo.NewIPLocator(cfg.GeoIP.BaseURL, logger)
		loc, err := locator.Locate(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve location from IP: %v\n", err)
			fmt.Fprintf(os.Stderr, "Pass <lat> <lon> explicitly instead.\n")
			os.Exit(1)
		}
		lat = fmt.Sprintf("%g", loc.Lat)
		lon = fmt.Sprintf("%g", loc.Lon)
		fmt.Printf("Using approximate location %s, %s\n", lat, lon)
	}

	venues := venueapi.NewClient(cfg.VenueAPI, logger)
	quotes := service.NewQuoteService(venues, logger)

	result, err := quotes.Quote(ctx, service.QuoteRequest{
		VenueSlug: venueSlug,
		CartValue: cartValue,
		UserLat:   lat,
		UserLon:   lon,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to compute quote: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Quote for %s\n\n", venueSlug)
	fmt.Printf("Cart value:            %s\n", euros(result.CartValue))
	fmt.Printf("Small order surcharge: %s\n", euros(result.SmallOrderSurcharge))
	fmt.Printf("Delivery fee:          %s (%d m)\n", euros(result.DeliveryFee), result.DeliveryDistance)
	fmt.Printf("Total:                 %s\n", euros(result.TotalPrice))
}

func euros(cents int) string {
	return fmt.Sprintf("%d.%02d EUR", cents/100, cents%100)
}

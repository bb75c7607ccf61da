package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/courierhq/quoteapi/internal/domain"
	"github.com/courierhq/quoteapi/internal/service"
	"github.com/courierhq/quoteapi/pkg/errors"
)

// QuoteResponse represents the delivery order price breakdown
type QuoteResponse struct {
	TotalPrice          int          `json:"total_price"`
	SmallOrderSurcharge int          `json:"small_order_surcharge"`
	CartValue           int          `json:"cart_value"`
	Delivery            DeliveryPart `json:"delivery"`
}

type DeliveryPart struct {
	Fee      int `json:"fee"`
	Distance int `json:"distance"`
}

// HandleQuote handles GET /api/v1/delivery-order-price
func HandleQuote(quotes *service.QuoteService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := service.QuoteRequest{
			VenueSlug: c.Query("venue_slug"),
			CartValue: c.Query("cart_value"),
			UserLat:   c.Query("user_lat"),
			UserLon:   c.Query("user_lon"),
		}

		result, err := quotes.Quote(c.Request.Context(), req)
		if err != nil {
			if coded, ok := err.(errors.Coder); ok {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": coded.Error(),
					"code":  coded.Code(),
				})
				return
			}
			logger.Error("Failed to compute quote", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": "INTERNAL"})
			return
		}

		c.JSON(http.StatusOK, toQuoteResponse(result))
	}
}

func toQuoteResponse(result *domain.QuoteResult) QuoteResponse {
	return QuoteResponse{
		TotalPrice:          result.TotalPrice,
		SmallOrderSurcharge: result.SmallOrderSurcharge,
		CartValue:           result.CartValue,
		Delivery: DeliveryPart{
			Fee:      result.DeliveryFee,
			Distance: result.DeliveryDistance,
		},
	}
}

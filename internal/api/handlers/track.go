package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/domain"
	"github.com/nasik-dh/dress-sell/internal/order"
)

// HandleTrackOrders handles GET /v1/orders/track?phone=
// The phone must match the export exactly; zero matches is the empty state,
// not an error.
func HandleTrackOrders(tracker *order.Tracker, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := strings.TrimSpace(c.Query("phone"))
		if phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a phone number"})
			return
		}

		orders, err := tracker.FindByPhone(c.Request.Context(), phone)
		if err != nil {
			logger.Error("Order tracking failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load orders. Please try again."})
			return
		}

		if len(orders) == 0 {
			c.JSON(http.StatusOK, gin.H{
				"orders":  []domain.TrackedOrder{},
				"count":   0,
				"message": "No orders found for this phone number",
			})
			return
		}

		cards := make([]gin.H, 0, len(orders))
		for _, o := range orders {
			cards = append(cards, gin.H{
				"order":        o,
				"status_class": domain.OrderStatus(o.Status).BadgeClass(),
			})
		}
		c.JSON(http.StatusOK, gin.H{"orders": cards, "count": len(cards)})
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/api/middleware"
	"github.com/nasik-dh/dress-sell/internal/cart"
	"github.com/nasik-dh/dress-sell/internal/order"
	"github.com/nasik-dh/dress-sell/internal/service"
	apperrors "github.com/nasik-dh/dress-sell/pkg/errors"
)

// HandleCheckout handles POST /v1/checkout. On success the cart is cleared
// and the acknowledged order ID is returned; on failure the cart and form
// stay intact for a retry.
func HandleCheckout(carts *cart.Store, submitter *order.Submitter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		sessionID := middleware.GetSessionID(c)
		svc := service.NewCheckoutService(carts, submitter, logger)

		receipt, err := svc.Submit(c.Request.Context(), sessionID, req)
		if err != nil {
			switch e := err.(type) {
			case *apperrors.ErrValidation:
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":  e.Message,
					"fields": e.Fields,
				})
			case *apperrors.ErrRemote:
				c.JSON(http.StatusBadGateway, gin.H{
					"error":   "Error submitting order. Please try again.",
					"details": e.Message,
				})
			default:
				logger.Error("Checkout failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order_id": receipt.OrderID,
			"message":  "Order placed successfully",
		})
	}
}

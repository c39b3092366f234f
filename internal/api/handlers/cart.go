package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/api/middleware"
	"github.com/nasik-dh/dress-sell/internal/cart"
	"github.com/nasik-dh/dress-sell/internal/catalog"
)

// AddToCartRequest identifies the product to add
type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// ChangeQuantityRequest carries the signed quantity delta
type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// cartView is the full re-render of a session's cart state: item list, unit
// count and totals move together after every mutation.
func cartView(carts *cart.Store, sessionID string) gin.H {
	items := carts.Items(sessionID)
	return gin.H{
		"items":          items,
		"count":          carts.Count(sessionID),
		"total":          fmt.Sprintf("%.2f", carts.Total(sessionID)),
		"checkout_total": fmt.Sprintf("%.2f", carts.Total(sessionID)),
	}
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(carts *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)
		c.JSON(http.StatusOK, gin.H{"cart": cartView(carts, sessionID)})
	}
}

// HandleAddToCart handles POST /v1/cart/items
func HandleAddToCart(store *catalog.Store, carts *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		sessionID := middleware.GetSessionID(c)
		product, ok := store.FindByID(req.ProductID)
		if !ok {
			// user-visible notice, cart untouched
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found!"})
			return
		}

		carts.Add(sessionID, product)
		c.JSON(http.StatusOK, gin.H{
			"message": product.Name + " added!",
			"cart":    cartView(carts, sessionID),
		})
	}
}

// HandleChangeQuantity handles PATCH /v1/cart/items/:id. A delta that
// drives the quantity to zero or below removes the entry.
func HandleChangeQuantity(carts *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		var req ChangeQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		sessionID := middleware.GetSessionID(c)
		if !carts.ChangeQuantity(sessionID, id, req.Delta) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not in cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cartView(carts, sessionID)})
	}
}

// HandleRemoveFromCart handles DELETE /v1/cart/items/:id (idempotent)
func HandleRemoveFromCart(carts *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		sessionID := middleware.GetSessionID(c)
		carts.Remove(sessionID, id)

		c.JSON(http.StatusOK, gin.H{
			"message": "Item removed",
			"cart":    cartView(carts, sessionID),
		})
	}
}

package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/api/handlers"
	"github.com/nasik-dh/dress-sell/internal/api/middleware"
	"github.com/nasik-dh/dress-sell/internal/cart"
	"github.com/nasik-dh/dress-sell/internal/catalog"
	"github.com/nasik-dh/dress-sell/internal/config"
	"github.com/nasik-dh/dress-sell/internal/order"
)

// Deps are the state-holding components the handlers dispatch to
type Deps struct {
	Catalog   *catalog.Store
	Loader    *catalog.Loader
	Carts     *cart.Store
	Submitter *order.Submitter
	Tracker   *order.Tracker
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, deps *Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Dress Sell Storefront API",
			"endpoints": []string{
				"GET /health",
				"GET /v1/catalog/products",
				"GET /v1/catalog/products/:id",
				"GET /v1/catalog/search",
				"POST /v1/catalog/refresh",
				"GET /v1/cart",
				"POST /v1/cart/items",
				"PATCH /v1/cart/items/:id",
				"DELETE /v1/cart/items/:id",
				"POST /v1/checkout",
				"GET /v1/orders/track",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	v1.Use(middleware.Session())
	{
		v1.GET("/catalog/products", handlers.HandleListProducts(deps.Catalog, logger))
		v1.GET("/catalog/products/:id", handlers.HandleGetProduct(deps.Catalog, logger))
		v1.GET("/catalog/search", handlers.HandleSearchProducts(deps.Catalog, logger))
		v1.POST("/catalog/refresh", handlers.HandleRefreshCatalog(deps.Loader, deps.Catalog, logger))

		v1.GET("/cart", handlers.HandleGetCart(deps.Carts, logger))
		v1.POST("/cart/items", handlers.HandleAddToCart(deps.Catalog, deps.Carts, logger))
		v1.PATCH("/cart/items/:id", handlers.HandleChangeQuantity(deps.Carts, logger))
		v1.DELETE("/cart/items/:id", handlers.HandleRemoveFromCart(deps.Carts, logger))

		v1.POST("/checkout", handlers.HandleCheckout(deps.Carts, deps.Submitter, logger))

		v1.GET("/orders/track", handlers.HandleTrackOrders(deps.Tracker, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}

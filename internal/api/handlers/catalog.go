package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/catalog"
)

// HandleListProducts handles GET /v1/catalog/products?sort=
func HandleListProducts(store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortFeatured)))
		products := catalog.SortProducts(store.Products(), key)

		resp := gin.H{
			"products": products,
			"count":    len(products),
		}
		if store.Fallback() {
			// the export could not be loaded; the sample catalog is serving
			resp["notice"] = "Error loading products. Using sample data."
		}
		c.JSON(http.StatusOK, resp)
	}
}

// HandleGetProduct handles GET /v1/catalog/products/:id (detail view)
func HandleGetProduct(store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		product, ok := store.FindByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product":      product,
			"stars":        product.Stars(),
			"has_discount": product.HasDiscount(),
		})
	}
}

// HandleSearchProducts handles GET /v1/catalog/search?q=
// An empty query is the prompt state; zero matches is the distinct
// no-results state.
func HandleSearchProducts(store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if strings.TrimSpace(query) == "" {
			c.JSON(http.StatusOK, gin.H{
				"state":   "prompt",
				"message": "Start typing to search products...",
			})
			return
		}

		results := catalog.SearchProducts(store.Products(), query)
		if len(results) == 0 {
			c.JSON(http.StatusOK, gin.H{
				"state":   "no-results",
				"message": "No products found for \"" + query + "\"",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"state":    "results",
			"products": results,
			"count":    len(results),
		})
	}
}

// HandleRefreshCatalog handles POST /v1/catalog/refresh. Mirrors the page
// load: one fetch, wholesale replace, sample fallback on any failure.
func HandleRefreshCatalog(loader *catalog.Loader, store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := catalog.Refresh(c.Request.Context(), loader, store, logger)

		resp := gin.H{"count": store.Len()}
		if err != nil {
			resp["notice"] = "Error loading products. Using sample data."
		}
		c.JSON(http.StatusOK, resp)
	}
}

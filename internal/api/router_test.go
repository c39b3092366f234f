package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/cart"
	"github.com/nasik-dh/dress-sell/internal/catalog"
	"github.com/nasik-dh/dress-sell/internal/config"
	"github.com/nasik-dh/dress-sell/internal/order"
)

const sessionCookie = "shop_session=e2e-test-session"

type fixture struct {
	router *gin.Engine
	carts  *cart.Store
	store  *catalog.Store
}

// newFixture wires a router against stub endpoints for the catalog export,
// orders export, and script endpoint.
func newFixture(t *testing.T, catalogCSV, ordersCSV, scriptBody string) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(catalogCSV))
	}))
	t.Cleanup(catalogSrv.Close)

	ordersSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(ordersCSV))
	}))
	t.Cleanup(ordersSrv.Close)

	scriptSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(scriptBody))
	}))
	t.Cleanup(scriptSrv.Close)

	cfg := &config.Config{Port: "0", Environment: "test"}
	logger := zap.NewNop()

	store := catalog.NewStore()
	store.Replace(catalog.ParseProducts(catalogCSV), false)
	carts := cart.NewStore(logger)

	deps := &Deps{
		Catalog:   store,
		Loader:    catalog.NewLoader(catalogSrv.URL, logger),
		Carts:     carts,
		Submitter: order.NewSubmitter(scriptSrv.URL, logger),
		Tracker:   order.NewTracker(ordersSrv.URL, logger),
	}
	return &fixture{router: NewRouter(cfg, deps, logger), carts: carts, store: store}
}

func (f *fixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Cookie", sessionCookie)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

const oneShirtCSV = "name,category,price,stock,status\nRed Shirt,men,19.99,5,Active\n"

func TestCatalogAndSearchFlow(t *testing.T) {
	f := newFixture(t, oneShirtCSV, "", "")

	t.Run("active catalog has exactly one entry", func(t *testing.T) {
		w, resp := f.do(t, http.MethodGet, "/v1/catalog/products", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, resp["count"])
	})

	t.Run("search finds the shirt", func(t *testing.T) {
		w, resp := f.do(t, http.MethodGet, "/v1/catalog/search?q=red", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "results", resp["state"])
		assert.EqualValues(t, 1, resp["count"])
	})

	t.Run("no matches is the no-results state", func(t *testing.T) {
		w, resp := f.do(t, http.MethodGet, "/v1/catalog/search?q=blue", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no-results", resp["state"])
	})

	t.Run("empty query is the prompt state", func(t *testing.T) {
		w, resp := f.do(t, http.MethodGet, "/v1/catalog/search", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "prompt", resp["state"])
	})

	t.Run("detail view", func(t *testing.T) {
		w, resp := f.do(t, http.MethodGet, "/v1/catalog/products/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "★★★★☆", resp["stars"])

		w, _ = f.do(t, http.MethodGet, "/v1/catalog/products/99", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartFlow(t *testing.T) {
	f := newFixture(t, oneShirtCSV, "", "")

	w, resp := f.do(t, http.MethodPost, "/v1/cart/items", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Red Shirt added!", resp["message"])

	// increment by 1: total becomes 39.98
	w, resp = f.do(t, http.MethodPatch, "/v1/cart/items/1", `{"delta":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	cartState := resp["cart"].(map[string]any)
	assert.Equal(t, "39.98", cartState["total"])
	assert.EqualValues(t, 2, cartState["count"])

	// unknown product is a notice, not a mutation
	w, _ = f.do(t, http.MethodPost, "/v1/cart/items", `{"product_id":42}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// removal is idempotent
	w, _ = f.do(t, http.MethodDelete, "/v1/cart/items/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	w, resp = f.do(t, http.MethodGet, "/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	cartState = resp["cart"].(map[string]any)
	assert.EqualValues(t, 0, cartState["count"])
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	f := newFixture(t, oneShirtCSV, "", `{"status":"success","orderId":"ORD-X"}`)

	_, _ = f.do(t, http.MethodPost, "/v1/cart/items", `{"product_id":1}`)

	w, resp := f.do(t, http.MethodPost, "/v1/checkout",
		`{"customer_name":"Jane Doe","email":"jane@example.com","phone":"555-1234","address":"1 Main St","payment_method":"Cash on Delivery"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ORD-X", resp["order_id"])
	assert.Empty(t, f.carts.Items("e2e-test-session"))
}

func TestCheckoutFailureLeavesCart(t *testing.T) {
	f := newFixture(t, oneShirtCSV, "", `{"status":"error","message":"bad"}`)

	_, _ = f.do(t, http.MethodPost, "/v1/cart/items", `{"product_id":1}`)

	w, resp := f.do(t, http.MethodPost, "/v1/checkout",
		`{"customer_name":"Jane Doe","email":"jane@example.com","phone":"555-1234","address":"1 Main St","payment_method":"Cash on Delivery"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Error submitting order. Please try again.", resp["error"])
	assert.Len(t, f.carts.Items("e2e-test-session"), 1)
}

func TestTrackOrders(t *testing.T) {
	orders := "orderId,customerName,email,phone,address,paymentMethod,products,total,status\n" +
		"ORD-1,Jane Doe,jane@example.com,555-1234,1 Main St,Cash,Red Shirt x2,39.98,Pending\n"
	f := newFixture(t, oneShirtCSV, orders, "")

	t.Run("match renders one order card", func(t *testing.T) {
		w, resp := f.do(t, http.MethodGet, "/v1/orders/track?phone=555-1234", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, resp["count"])

		cards := resp["orders"].([]any)
		card := cards[0].(map[string]any)
		assert.Equal(t, "pending", card["status_class"])
		orderBody := card["order"].(map[string]any)
		assert.Equal(t, "ORD-1", orderBody["order_id"])
		assert.Equal(t, "Jane Doe", orderBody["customer_name"])
	})

	t.Run("different phone yields the empty state", func(t *testing.T) {
		w, resp := f.do(t, http.MethodGet, "/v1/orders/track?phone=555-0000", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 0, resp["count"])
		assert.Equal(t, "No orders found for this phone number", resp["message"])
	})

	t.Run("missing phone is rejected", func(t *testing.T) {
		w, _ := f.do(t, http.MethodGet, "/v1/orders/track", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSessionCookieIssued(t *testing.T) {
	f := newFixture(t, oneShirtCSV, "", "")

	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "shop_session" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a session cookie to be set")
}

func TestCatalogRefreshEndpoint(t *testing.T) {
	f := newFixture(t, oneShirtCSV, "", "")
	f.store.Replace(nil, false)

	w, resp := f.do(t, http.MethodPost, "/v1/catalog/refresh", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, resp["count"])
	assert.Equal(t, 1, f.store.Len())
}

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/cart"
	"github.com/nasik-dh/dress-sell/internal/domain"
	"github.com/nasik-dh/dress-sell/internal/order"
	apperrors "github.com/nasik-dh/dress-sell/pkg/errors"
)

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "555-1234",
		Address:       "1 Main St",
		PaymentMethod: "Cash on Delivery",
	}
}

func cartWithRedShirt(t *testing.T, quantity int) *cart.Store {
	t.Helper()
	carts := cart.NewStore(zap.NewNop())
	p := domain.Product{ID: 1, Name: "Red Shirt", Price: "19.99", Stock: 5, Status: "Active"}
	for i := 0; i < quantity; i++ {
		carts.Add("s1", p)
	}
	return carts
}

func TestSubmitClearsCartOnSuccess(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"status":"success","orderId":"ORD-X"}`))
	}))
	defer srv.Close()

	carts := cartWithRedShirt(t, 2)
	svc := NewCheckoutService(carts, order.NewSubmitter(srv.URL, zap.NewNop()), zap.NewNop())

	receipt, err := svc.Submit(context.Background(), "s1", validRequest())

	require.NoError(t, err)
	assert.Equal(t, "ORD-X", receipt.OrderID)
	assert.Empty(t, carts.Items("s1"))

	assert.Equal(t, "39.98", got.Get("total"))
	assert.Equal(t, "Pending", got.Get("status"))
	assert.Contains(t, got.Get("products"), "Red Shirt")
	assert.Regexp(t, `^ORD-[0-9a-z]+-[0-9A-Z]{6}$`, got.Get("orderId"))
}

func TestSubmitLeavesCartOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","message":"bad"}`))
	}))
	defer srv.Close()

	carts := cartWithRedShirt(t, 2)
	svc := NewCheckoutService(carts, order.NewSubmitter(srv.URL, zap.NewNop()), zap.NewNop())

	_, err := svc.Submit(context.Background(), "s1", validRequest())

	var remoteErr *apperrors.ErrRemote
	require.ErrorAs(t, err, &remoteErr)
	assert.Contains(t, remoteErr.Error(), "bad")

	items := carts.Items("s1")
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestSubmitValidation(t *testing.T) {
	carts := cartWithRedShirt(t, 1)
	svc := NewCheckoutService(carts, order.NewSubmitter("http://unused.invalid", zap.NewNop()), zap.NewNop())

	t.Run("missing fields", func(t *testing.T) {
		req := validRequest()
		req.Phone = ""
		req.Address = "  "

		_, err := svc.Submit(context.Background(), "s1", req)

		var vErr *apperrors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "phone")
		assert.Contains(t, vErr.Fields, "address")
	})

	t.Run("bad email", func(t *testing.T) {
		req := validRequest()
		req.Email = "not-an-email"

		_, err := svc.Submit(context.Background(), "s1", req)

		var vErr *apperrors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "email")
	})

	t.Run("empty cart", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), "empty-session", validRequest())

		var vErr *apperrors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Your cart is empty", vErr.Message)
	})

	t.Run("validation never touches the cart", func(t *testing.T) {
		require.Len(t, carts.Items("s1"), 1)
	})
}

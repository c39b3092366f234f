package order

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/domain"
	"github.com/nasik-dh/dress-sell/internal/sheet"
)

// Tracker looks up prior orders in the published orders export
type Tracker struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewTracker creates a client for the orders export URL
func NewTracker(url string, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// FindByPhone fetches the full export and returns the orders whose phone
// field equals the input exactly (no formatting normalization). Zero matches
// is a normal empty result, not an error. The export is re-fetched on every
// call and never cached.
func (t *Tracker) FindByPhone(ctx context.Context, phone string) ([]domain.TrackedOrder, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Warn("Orders export request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("orders export returned %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var matches []domain.TrackedOrder
	for _, o := range ParseOrders(string(body)) {
		if o.Phone == phone {
			matches = append(matches, o)
		}
	}
	return matches, nil
}

// ParseOrders decodes the orders export. Rows may carry extra trailing
// fields (embedded newlines in the products cell), so the loose decode is
// used. Totals and phone numbers pass through unvalidated; the sheet is the
// source of truth and tracking is display-only.
func ParseOrders(text string) []domain.TrackedOrder {
	records := sheet.DecodeLoose(text)

	var orders []domain.TrackedOrder
	for _, r := range records {
		orders = append(orders, domain.TrackedOrder{
			OrderID:       r.Get("orderId", "OrderId", "Order ID"),
			CustomerName:  r.Get("customerName", "CustomerName", "Customer Name"),
			Email:         r.Get("email", "Email"),
			Phone:         r.Get("phone", "Phone"),
			Address:       r.Get("address", "Address"),
			PaymentMethod: r.Get("paymentMethod", "PaymentMethod", "Payment Method"),
			Products:      r.Get("products", "Products"),
			Total:         r.GetDefault("0", "total", "Total", "Total Amount"),
			Status:        r.GetDefault(string(domain.OrderStatusPending), "status", "Status"),
		})
	}
	return orders
}

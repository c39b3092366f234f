package order

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/domain"
	apperrors "github.com/nasik-dh/dress-sell/pkg/errors"
)

// Submission is one outbound order for the form-handler endpoint
type Submission struct {
	OrderID       string
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	PaymentMethod string
	Products      string // serialized cart contents
	Total         string // decimal string
	Status        domain.OrderStatus
}

// Receipt is the endpoint's acknowledgment of a submitted order
type Receipt struct {
	OrderID string
}

// scriptResponse is the endpoint's status payload
type scriptResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// Submitter sends orders to the form-handler script endpoint
type Submitter struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewSubmitter creates a client for the script endpoint
func NewSubmitter(url string, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Submit sends the order as a single query-encoded GET and parses the status
// payload. Success is the "success" sentinel in the response status; any
// other outcome (transport failure, malformed body, non-success sentinel) is
// an error and the caller leaves the cart untouched so the user can retry.
// The endpoint may hand back a normalized order identifier; when it does not,
// the submitted one is echoed.
func (s *Submitter) Submit(ctx context.Context, sub Submission) (*Receipt, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("action", "submitOrder")
	q.Set("orderId", sub.OrderID)
	q.Set("customerName", sub.CustomerName)
	q.Set("email", sub.Email)
	q.Set("phone", sub.Phone)
	q.Set("address", sub.Address)
	q.Set("paymentMethod", sub.PaymentMethod)
	q.Set("products", sub.Products)
	q.Set("total", sub.Total)
	q.Set("status", string(sub.Status))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("Order submission request failed", zap.Error(err), zap.String("order_id", sub.OrderID))
		return nil, &apperrors.ErrRemote{Op: "submit order", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.ErrRemote{Op: "submit order", Message: err.Error()}
	}

	// The script endpoint answers through redirects and always carries its
	// outcome in the body, so the body decides, not the HTTP status.
	var result scriptResponse
	if err := json.Unmarshal(body, &result); err != nil {
		s.logger.Warn("Order submission returned malformed body",
			zap.Int("status_code", resp.StatusCode),
			zap.String("order_id", sub.OrderID),
		)
		return nil, &apperrors.ErrRemote{Op: "submit order", Message: "unexpected response from order endpoint"}
	}

	if result.Status != "success" {
		msg := result.Message
		if msg == "" {
			msg = "Order submission failed"
		}
		return nil, &apperrors.ErrRemote{Op: "submit order", Message: msg}
	}

	orderID := strings.TrimSpace(result.OrderID)
	if orderID == "" {
		orderID = sub.OrderID
	}

	s.logger.Info("Order submitted", zap.String("order_id", orderID))
	return &Receipt{OrderID: orderID}, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/cart"
	"github.com/nasik-dh/dress-sell/internal/domain"
	"github.com/nasik-dh/dress-sell/internal/order"
	apperrors "github.com/nasik-dh/dress-sell/pkg/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckoutRequest carries the customer fields from the checkout form
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

type checkoutService struct {
	carts     *cart.Store
	submitter *order.Submitter
	logger    *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(carts *cart.Store, submitter *order.Submitter, logger *zap.Logger) *checkoutService {
	return &checkoutService{
		carts:     carts,
		submitter: submitter,
		logger:    logger,
	}
}

// Submit builds an order from the session's cart and sends it to the script
// endpoint. The cart is cleared only after a successful submission; on any
// failure it stays intact so the user can resubmit.
func (s *checkoutService) Submit(ctx context.Context, sessionID string, req CheckoutRequest) (*order.Receipt, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	items := s.carts.Items(sessionID)
	if len(items) == 0 {
		return nil, &apperrors.ErrValidation{Message: "Your cart is empty"}
	}

	products, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	sub := order.Submission{
		OrderID:       order.NewID(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		PaymentMethod: req.PaymentMethod,
		Products:      string(products),
		Total:         fmt.Sprintf("%.2f", s.carts.Total(sessionID)),
		Status:        domain.OrderStatusPending,
	}

	s.logger.Info("Submitting order",
		zap.String("order_id", sub.OrderID),
		zap.Int("items", len(items)),
		zap.String("total", sub.Total),
	)

	receipt, err := s.submitter.Submit(ctx, sub)
	if err != nil {
		s.logger.Error("Order submission failed", zap.Error(err), zap.String("order_id", sub.OrderID))
		return nil, err
	}

	s.carts.Clear(sessionID)
	return receipt, nil
}

func validateCheckout(req CheckoutRequest) error {
	fields := map[string]string{}
	for name, value := range map[string]string{
		"customer_name":  req.CustomerName,
		"email":          req.Email,
		"phone":          req.Phone,
		"address":        req.Address,
		"payment_method": req.PaymentMethod,
	} {
		if strings.TrimSpace(value) == "" {
			fields[name] = "required"
		}
	}
	if len(fields) > 0 {
		return &apperrors.ErrValidation{Message: "Please fill all fields", Fields: fields}
	}

	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return &apperrors.ErrValidation{
			Message: "Please enter a valid email",
			Fields:  map[string]string{"email": "invalid"},
		}
	}
	return nil
}

package domain

import "strings"

// OrderStatus is the lifecycle label carried on a submitted or tracked order.
// The orders sheet is hand-edited, so unknown labels are displayed as-is.
type OrderStatus string

const (
	// Pending - submitted, not yet picked up by the shop
	OrderStatusPending OrderStatus = "Pending"
	// Processing - being prepared
	OrderStatusProcessing OrderStatus = "Processing"
	// Shipped - handed to the carrier
	OrderStatusShipped OrderStatus = "Shipped"
	// Delivered - received by the customer
	OrderStatusDelivered OrderStatus = "Delivered"
	// Cancelled - called off before shipping
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// IsKnown reports whether the status is one the shop uses
func (s OrderStatus) IsKnown() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// BadgeClass is the lowercase form used as a display style key
func (s OrderStatus) BadgeClass() string {
	return strings.ToLower(string(s))
}

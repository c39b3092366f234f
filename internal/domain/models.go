package domain

import (
	"math"
	"strconv"
	"strings"
)

// Defaults applied when a catalog row leaves a field blank
const (
	DefaultImage       = "https://images.unsplash.com/photo-1560769669-975ec94e6a86?w=500"
	DefaultRating      = 4.0
	DefaultDescription = "Premium quality product."
	DefaultStatus      = "Active"
)

// Product is one catalog entry. Prices are kept as the text the sheet
// exported and parsed on use, so a malformed cell degrades to NaN instead of
// dropping the row.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         string  `json:"price"`
	OriginalPrice string  `json:"original_price,omitempty"`
	Image         string  `json:"image"`
	Badge         string  `json:"badge,omitempty"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Description   string  `json:"description"`
	Stock         int     `json:"stock"`
	Status        string  `json:"status"`
}

// IsActive reports whether the product belongs in the active catalog
func (p Product) IsActive() bool {
	return p.Stock > 0 && p.Status == DefaultStatus
}

// PriceValue parses the price text. Non-numeric text yields NaN.
func (p Product) PriceValue() float64 {
	return parsePrice(p.Price)
}

// OriginalPriceValue parses the pre-discount price text. Non-numeric text
// (including the empty string) yields NaN.
func (p Product) OriginalPriceValue() float64 {
	return parsePrice(p.OriginalPrice)
}

// HasDiscount reports whether the original price is present and strictly
// greater than the current price
func (p Product) HasDiscount() bool {
	return p.OriginalPrice != "" && p.OriginalPriceValue() > p.PriceValue()
}

// Stars renders the 5-symbol rating display: floor(rating) filled stars
// followed by empty stars
func (p Product) Stars() string {
	filled := int(math.Floor(p.Rating))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// CartItem is a chosen product with quantity and variant selections
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
}

// LineTotal is parsed price × quantity
func (i CartItem) LineTotal() float64 {
	return i.Product.PriceValue() * float64(i.Quantity)
}

// TrackedOrder is an order row read back from the orders export. Read-only;
// totals and phone numbers pass through exactly as the sheet has them.
type TrackedOrder struct {
	OrderID       string `json:"order_id"`
	CustomerName  string `json:"customer_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
	Products      string `json:"products"`
	Total         string `json:"total"`
	Status        string `json:"status"`
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

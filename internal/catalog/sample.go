package catalog

import "github.com/nasik-dh/dress-sell/internal/domain"

// SampleProducts is the built-in catalog installed when the export cannot be
// loaded, so browsing still works without the sheet.
func SampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            1,
			Name:          "Classic Denim Jacket",
			Category:      "men",
			Price:         "89.99",
			OriginalPrice: "129.99",
			Image:         "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500",
			Badge:         "Sale",
			Rating:        4.5,
			Reviews:       128,
			Description:   "Premium quality denim jacket with classic fit.",
			Stock:         50,
			Status:        "Active",
		},
		{
			ID:            2,
			Name:          "Elegant Summer Dress",
			Category:      "women",
			Price:         "59.99",
			OriginalPrice: "79.99",
			Image:         "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500",
			Badge:         "New",
			Rating:        4.8,
			Reviews:       256,
			Description:   "Beautiful summer dress with floral pattern.",
			Stock:         75,
			Status:        "Active",
		},
	}
}

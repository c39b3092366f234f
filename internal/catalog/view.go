package catalog

import (
	"sort"
	"strings"

	"github.com/nasik-dh/dress-sell/internal/domain"
)

// SortKey selects a catalog ordering
type SortKey string

const (
	SortFeatured  SortKey = "featured"  // load order
	SortPriceLow  SortKey = "price-low" // ascending parsed price
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest" // reverse load order
)

// SortProducts returns a sorted copy; the input is never mutated. Unknown
// keys behave like featured. Non-numeric prices parse to NaN, whose position
// under the price orderings is unspecified.
func SortProducts(products []domain.Product, key SortKey) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceValue() < out[j].PriceValue()
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceValue() > out[j].PriceValue()
		})
	case SortNewest:
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// SearchProducts matches the query as a case-insensitive substring of the
// name, category, or description. The caller distinguishes an empty query
// (prompt state) from zero matches (no-results state).
func SearchProducts(products []domain.Product, query string) []domain.Product {
	q := strings.ToLower(query)

	var results []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			results = append(results, p)
		}
	}
	return results
}

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/domain"
	"github.com/nasik-dh/dress-sell/internal/sheet"
)

// Loader fetches the published catalog export
type Loader struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewLoader creates a catalog loader for the products export URL
func NewLoader(url string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Fetch issues a single GET to the export and decodes the active catalog.
// A transport failure, non-OK status, or an export with zero active products
// is an error; the caller decides whether to fall back to the sample catalog.
func (l *Loader) Fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		l.logger.Warn("Catalog export request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog export returned %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	products := ParseProducts(string(body))
	if len(products) == 0 {
		return nil, fmt.Errorf("no products found in export")
	}

	return products, nil
}

// ParseProducts decodes export text into the active catalog: rows are
// normalized through the header alias chains, defaults fill blank cells, and
// only in-stock Active products are kept. Product IDs are the data-line
// numbers of the export, so they survive filtering unchanged.
func ParseProducts(text string) []domain.Product {
	records := sheet.Decode(text)

	var products []domain.Product
	for _, r := range records {
		p := domain.Product{
			ID:            r.Line,
			Name:          r.Get("name", "Name"),
			Category:      r.Get("category", "Category"),
			Price:         r.GetDefault("0", "price", "Price"),
			OriginalPrice: r.Get("originalPrice", "OriginalPrice"),
			Image:         r.GetDefault(domain.DefaultImage, "imageUrl", "Image", "image"),
			Badge:         r.Get("badge", "Badge"),
			Rating:        parseFloatOr(r.Get("rating", "Rating"), domain.DefaultRating),
			Reviews:       parseIntOr(r.Get("reviews", "Reviews"), 0),
			Description:   r.GetDefault(domain.DefaultDescription, "description", "Description"),
			Stock:         parseIntOr(r.Get("stock", "Stock"), 0),
			Status:        r.GetDefault(domain.DefaultStatus, "status", "Status"),
		}
		if p.IsActive() {
			products = append(products, p)
		}
	}
	return products
}

func parseFloatOr(s string, def float64) float64 {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return def
}

func parseIntOr(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// Package cart holds the in-memory shopping carts. Carts are scoped to a
// session and never persisted; a new session always starts empty.
package cart

import (
	"sync"

	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/domain"
)

// Variant defaults applied on first add; the sheet catalog carries no
// per-product variant lists.
const (
	DefaultSize  = "M"
	DefaultColor = "Black"
)

// Store maps session IDs to carts. All mutations are serialized behind one
// mutex, so a session's displayed state never diverges from its cart.
type Store struct {
	mu     sync.Mutex
	carts  map[string][]domain.CartItem
	logger *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		carts:  make(map[string][]domain.CartItem),
		logger: logger,
	}
}

// Add puts the product in the session's cart. An existing entry increments
// its quantity; there is at most one entry per product identifier.
func (s *Store) Add(sessionID string, p domain.Product) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].Product.ID == p.ID {
			items[i].Quantity++
			return items[i]
		}
	}

	item := domain.CartItem{
		Product:  p,
		Quantity: 1,
		Size:     DefaultSize,
		Color:    DefaultColor,
	}
	s.carts[sessionID] = append(items, item)
	s.logger.Debug("Product added to cart",
		zap.String("session_id", sessionID),
		zap.Int("product_id", p.ID),
	)
	return item
}

// ChangeQuantity adds delta to the entry's quantity. A result of zero or
// below removes the entry. Returns false when no entry matches.
func (s *Store) ChangeQuantity(sessionID string, productID, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity += delta
			if items[i].Quantity <= 0 {
				s.carts[sessionID] = append(items[:i], items[i+1:]...)
			}
			return true
		}
	}
	return false
}

// Remove deletes the entry unconditionally. Removing an absent entry is a
// no-op.
func (s *Store) Remove(sessionID string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].Product.ID == productID {
			s.carts[sessionID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// Items returns the session's cart in add order
func (s *Store) Items(sessionID string) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}

// Total sums parsed price × quantity over the cart. Prices are text from
// the sheet; a malformed price makes the total NaN rather than dropping the
// line.
func (s *Store) Total(sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.carts[sessionID] {
		total += item.LineTotal()
	}
	return total
}

// Count is the total number of units across all entries
func (s *Store) Count(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.carts[sessionID] {
		count += item.Quantity
	}
	return count
}

// Clear empties the session's cart
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

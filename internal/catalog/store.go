package catalog

import (
	"sync"

	"github.com/nasik-dh/dress-sell/internal/domain"
)

// Store holds the catalog currently being served. The catalog is replaced
// wholesale on every load; there is no merge or incremental update.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
	fallback bool
}

func NewStore() *Store {
	return &Store{}
}

// Replace installs a new catalog. fallback marks the built-in sample catalog
// so the fact can surface as a user-visible notice.
func (s *Store) Replace(products []domain.Product, fallback bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.fallback = fallback
}

// Products returns the catalog in load order
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindByID looks up a product by its row-derived identifier
func (s *Store) FindByID(id int) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Fallback reports whether the sample catalog is installed
func (s *Store) Fallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

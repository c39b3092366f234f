package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

var refreshMu sync.Mutex

// Refresh loads the export and installs it wholesale. On any failure the
// built-in sample catalog is installed instead so browsing still works; the
// returned error says why the fallback was used.
func Refresh(ctx context.Context, loader *Loader, store *Store, logger *zap.Logger) error {
	products, err := loader.Fetch(ctx)
	if err != nil {
		logger.Warn("Error loading products, using sample data", zap.Error(err))
		store.Replace(SampleProducts(), true)
		return err
	}

	store.Replace(products, false)
	logger.Info("Catalog loaded", zap.Int("products", len(products)))
	return nil
}

// RunRefreshLoop refreshes once, then every interval. Call from a goroutine.
func RunRefreshLoop(ctx context.Context, interval time.Duration, loader *Loader, store *Store, logger *zap.Logger) {
	refreshMu.Lock()
	_ = Refresh(ctx, loader, store, logger)
	refreshMu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refreshMu.Lock()
			_ = Refresh(ctx, loader, store, logger)
			refreshMu.Unlock()
		}
	}
}

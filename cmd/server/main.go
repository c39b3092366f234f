package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/api"
	"github.com/nasik-dh/dress-sell/internal/cart"
	"github.com/nasik-dh/dress-sell/internal/catalog"
	"github.com/nasik-dh/dress-sell/internal/config"
	"github.com/nasik-dh/dress-sell/internal/order"
)

func main() {
	// Load .env if present (viper also reads it; this covers plain env vars)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting storefront API server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	// State-holding components
	store := catalog.NewStore()
	loader := catalog.NewLoader(cfg.Sheets.ProductsURL, logger)
	carts := cart.NewStore(logger)
	submitter := order.NewSubmitter(cfg.Script.URL, logger)
	tracker := order.NewTracker(cfg.Sheets.OrdersURL, logger)

	// Initialize router
	router := api.NewRouter(cfg, &api.Deps{
		Catalog:   store,
		Loader:    loader,
		Carts:     carts,
		Submitter: submitter,
		Tracker:   tracker,
	}, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Catalog load: once on startup, then periodically when configured.
	// A failed load installs the sample catalog so browsing still works.
	refreshCtx, cancelRefresh := context.WithCancel(context.Background())
	defer cancelRefresh()
	if cfg.Catalog.RefreshMinutes > 0 {
		interval := time.Duration(cfg.Catalog.RefreshMinutes) * time.Minute
		go catalog.RunRefreshLoop(refreshCtx, interval, loader, store, logger)
		logger.Info("Catalog refresh started", zap.Int("interval_minutes", cfg.Catalog.RefreshMinutes))
	} else {
		_ = catalog.Refresh(refreshCtx, loader, store, logger)
	}

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/catalog"
	"github.com/nasik-dh/dress-sell/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	fmt.Printf("Fetching catalog from %s\n\n", cfg.Sheets.ProductsURL)

	loader := catalog.NewLoader(cfg.Sheets.ProductsURL, logger)
	products, err := loader.Fetch(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		fmt.Println("Falling back to the sample catalog:")
		products = catalog.SampleProducts()
	}

	fmt.Printf("Active catalog (%d products):\n\n", len(products))
	for _, p := range products {
		fmt.Printf("  [%d] %s (%s)\n", p.ID, p.Name, p.Category)
		fmt.Printf("      Price: $%s", p.Price)
		if p.HasDiscount() {
			fmt.Printf("  (was $%s)", p.OriginalPrice)
		}
		fmt.Println()
		fmt.Printf("      Rating: %s (%d reviews)  Stock: %d\n", p.Stars(), p.Reviews, p.Stock)
		if p.Badge != "" {
			fmt.Printf("      Badge: %s\n", p.Badge)
		}
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nasik-dh/dress-sell/internal/config"
	"github.com/nasik-dh/dress-sell/internal/order"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/track-orders/main.go <phone>")
		fmt.Println("Example: go run cmd/track-orders/main.go \"555-1234\"")
		os.Exit(1)
	}

	phone := os.Args[1]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	fmt.Printf("Searching orders for phone: %s\n\n", phone)

	tracker := order.NewTracker(cfg.Sheets.OrdersURL, logger)
	orders, err := tracker.FindByPhone(context.Background(), phone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load orders: %v\n", err)
		os.Exit(1)
	}

	if len(orders) == 0 {
		fmt.Println("No orders found for this phone number")
		return
	}

	fmt.Printf("Found %d order(s):\n\n", len(orders))
	for _, o := range orders {
		fmt.Printf("Order ID: %s\n", o.OrderID)
		fmt.Printf("Status: %s\n", o.Status)
		fmt.Printf("Customer: %s\n", o.CustomerName)
		fmt.Printf("Email: %s\n", o.Email)
		fmt.Printf("Address: %s\n", o.Address)
		fmt.Printf("Payment: %s\n", o.PaymentMethod)
		fmt.Printf("Total: $%s\n", o.Total)
		fmt.Printf("Products: %s\n", o.Products)
		fmt.Println()
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/sainadh7/V-S-Sainadha-Krishna-C-C3-Project/internal/config"
	"github.com/sainadh7/V-S-Sainadha-Krishna-C-C3-Project/internal/restaurant"
	"github.com/sainadh7/V-S-Sainadha-Krishna-C-C3-Project/internal/service"
	"github.com/sainadh7/V-S-Sainadha-Krishna-C-C3-Project/pkg/logger"
)

// Prints the configured restaurant. Any arguments are treated as item names
// of an order to price and place.
func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	clock := clockwork.NewRealClock()

	r := restaurant.New(
		cfg.Restaurant.Name,
		cfg.Restaurant.Location,
		cfg.Restaurant.OpeningTime,
		cfg.Restaurant.ClosingTime,
		restaurant.WithClock(clock),
		restaurant.WithOutput(os.Stdout),
	)
	for _, entry := range cfg.Restaurant.Menu {
		if err := r.AddMenuItem(entry.Name, entry.Price); err != nil {
			log.Error("failed to add menu item", "item", entry.Name, "error", err)
			os.Exit(1)
		}
	}

	log.Info("restaurant loaded",
		"name", r.Name(),
		"menu_items", len(r.Menu()),
		"open", r.IsOpen(),
		"current_time", r.CurrentTime().String(),
	)

	if err := r.DisplayDetails(); err != nil {
		log.Error("failed to display details", "error", err)
		os.Exit(1)
	}

	items := os.Args[1:]
	if len(items) == 0 {
		return
	}

	if err := r.DisplayOrderCost(items); err != nil {
		log.Error("failed to price order", "error", err)
		os.Exit(1)
	}

	orderService := service.NewOrderService(r, clock, log)
	order, err := orderService.PlaceOrder(context.Background(), items)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantClosed) {
			fmt.Printf("%s is closed right now, opening hours are %s-%s\n",
				r.Name(), r.OpeningTime(), r.ClosingTime())
			return
		}
		log.Error("failed to place order", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Order %s placed\n", order.ID)
}

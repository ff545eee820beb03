package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sainadh7/V-S-Sainadha-Krishna-C-C3-Project/internal/models"
)

var (
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrRestaurantClosed = errors.New("restaurant is closed")
	ErrInvalidItem      = errors.New("item is not on the menu")
)

// Restaurant is the part of restaurant.Restaurant the order service needs
type Restaurant interface {
	Name() string
	IsOpen() bool
	Menu() []models.MenuItem
	OrderCost(itemNames []string) (int, error)
}

// OrderService handles order business logic
type OrderService struct {
	restaurant Restaurant
	clock      clockwork.Clock
	log        *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(restaurant Restaurant, clock clockwork.Clock, log *slog.Logger) *OrderService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = slog.Default()
	}
	return &OrderService{
		restaurant: restaurant,
		clock:      clock,
		log:        log,
	}
}

// PlaceOrder prices the named items and returns a confirmed order
func (s *OrderService) PlaceOrder(ctx context.Context, itemNames []string) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(itemNames) == 0 {
		return nil, ErrEmptyOrder
	}

	if !s.restaurant.IsOpen() {
		s.log.Warn("order rejected", "restaurant", s.restaurant.Name(), "reason", "closed")
		return nil, ErrRestaurantClosed
	}

	total, err := s.restaurant.OrderCost(itemNames)
	if err != nil {
		s.log.Warn("order rejected", "restaurant", s.restaurant.Name(), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}

	order := &models.Order{
		ID:       generateOrderID(),
		Items:    resolveItems(s.restaurant.Menu(), itemNames),
		Total:    total,
		PlacedAt: s.clock.Now(),
	}

	s.log.Info("order placed",
		"order_id", order.ID,
		"items_count", len(order.Items),
		"total", order.Total,
	)

	return order, nil
}

// resolveItems maps each name to its first menu match, keeping request order.
// Callers have already priced the order so every name is present.
func resolveItems(menu []models.MenuItem, itemNames []string) []models.MenuItem {
	byName := make(map[string]models.MenuItem, len(menu))
	for _, item := range menu {
		if _, exists := byName[item.Name]; !exists {
			byName[item.Name] = item
		}
	}

	items := make([]models.MenuItem, 0, len(itemNames))
	for _, name := range itemNames {
		items = append(items, byName[name])
	}
	return items
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}

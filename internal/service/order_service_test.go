package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sainadh7/V-S-Sainadha-Krishna-C-C3-Project/internal/restaurant"
)

func newTestRestaurant(t *testing.T, clock clockwork.Clock) *restaurant.Restaurant {
	t.Helper()
	opening, _ := restaurant.NewTimeOfDay(10, 30, 0)
	closing, _ := restaurant.NewTimeOfDay(22, 0, 0)
	r := restaurant.New("Amelie's cafe", "Chennai", opening, closing,
		restaurant.WithClock(clock),
		restaurant.WithOutput(io.Discard),
	)
	if err := r.AddMenuItem("Sweet corn soup", 119); err != nil {
		t.Fatalf("AddMenuItem() error = %v", err)
	}
	if err := r.AddMenuItem("Vegetable lasagne", 269); err != nil {
		t.Fatalf("AddMenuItem() error = %v", err)
	}
	return r
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderService_PlaceOrder(t *testing.T) {
	openAt := time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC)
	closedAt := time.Date(2024, time.March, 1, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		items     []string
		wantErr   error
		wantTotal int
	}{
		{
			name:      "valid order with multiple items",
			now:       openAt,
			items:     []string{"Sweet corn soup", "Vegetable lasagne"},
			wantTotal: 388,
		},
		{
			name:      "repeated item charged twice",
			now:       openAt,
			items:     []string{"Vegetable lasagne", "Vegetable lasagne"},
			wantTotal: 538,
		},
		{
			name:    "empty order",
			now:     openAt,
			items:   []string{},
			wantErr: ErrEmptyOrder,
		},
		{
			name:    "restaurant closed",
			now:     closedAt,
			items:   []string{"Sweet corn soup"},
			wantErr: ErrRestaurantClosed,
		},
		{
			name:    "item not on menu",
			now:     openAt,
			items:   []string{"French fries"},
			wantErr: ErrInvalidItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := clockwork.NewFakeClockAt(tt.now)
			orderService := NewOrderService(newTestRestaurant(t, clock), clock, discardLogger())

			order, err := orderService.PlaceOrder(context.Background(), tt.items)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("PlaceOrder() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("PlaceOrder() unexpected error = %v", err)
			}

			if _, err := uuid.Parse(order.ID); err != nil {
				t.Errorf("PlaceOrder() order ID %q is not a UUID", order.ID)
			}

			if order.Total != tt.wantTotal {
				t.Errorf("PlaceOrder() total = %d, want %d", order.Total, tt.wantTotal)
			}

			if len(order.Items) != len(tt.items) {
				t.Fatalf("PlaceOrder() items count = %d, want %d", len(order.Items), len(tt.items))
			}

			for i, name := range tt.items {
				if order.Items[i].Name != name {
					t.Errorf("item %d = %q, want %q", i, order.Items[i].Name, name)
				}
			}

			if !order.PlacedAt.Equal(tt.now) {
				t.Errorf("PlaceOrder() placedAt = %v, want %v", order.PlacedAt, tt.now)
			}
		})
	}
}

func TestOrderService_PlaceOrderUnknownItemKeepsLookupError(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))
	orderService := NewOrderService(newTestRestaurant(t, clock), clock, discardLogger())

	_, err := orderService.PlaceOrder(context.Background(), []string{"French fries"})

	if !errors.Is(err, restaurant.ErrItemNotFound) {
		t.Errorf("expected error to wrap %v, got %v", restaurant.ErrItemNotFound, err)
	}
}

func TestOrderService_PlaceOrderCancelledContext(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))
	orderService := NewOrderService(newTestRestaurant(t, clock), clock, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := orderService.PlaceOrder(ctx, []string{"Sweet corn soup"}); !errors.Is(err, context.Canceled) {
		t.Errorf("PlaceOrder() error = %v, want %v", err, context.Canceled)
	}
}

func TestOrderService_UniqueOrderIDs(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))
	orderService := NewOrderService(newTestRestaurant(t, clock), clock, discardLogger())

	first, err := orderService.PlaceOrder(context.Background(), []string{"Sweet corn soup"})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	second, err := orderService.PlaceOrder(context.Background(), []string{"Sweet corn soup"})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("expected distinct order IDs, both %q", first.ID)
	}
}

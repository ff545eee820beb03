// Package restaurant models a single restaurant: its operating window, its menu
// and the cost of orders placed against that menu.
package restaurant

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/sainadh7/V-S-Sainadha-Krishna-C-C3-Project/internal/models"
	"github.com/sainadh7/V-S-Sainadha-Krishna-C-C3-Project/internal/repository"
)

var (
	// ErrItemNotFound is returned when a menu item name has no exact match
	ErrItemNotFound = repository.ErrItemNotFound

	ErrInvalidMenuItem = errors.New("invalid menu item")
)

// Option configures a Restaurant
type Option func(*Restaurant)

// WithClock replaces the real clock used by IsOpen
func WithClock(clock clockwork.Clock) Option {
	return func(r *Restaurant) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithOutput replaces stdout as the sink for Display methods
func WithOutput(w io.Writer) Option {
	return func(r *Restaurant) {
		if w != nil {
			r.out = w
		}
	}
}

// Restaurant holds identity, operating hours and an ordered menu.
// It is not safe for concurrent use; callers must serialize access.
type Restaurant struct {
	name        string
	location    string
	openingTime TimeOfDay
	closingTime TimeOfDay
	menu        repository.MenuRepository
	clock       clockwork.Clock
	out         io.Writer
}

// New creates a restaurant with an empty menu
func New(name, location string, openingTime, closingTime TimeOfDay, opts ...Option) *Restaurant {
	r := &Restaurant{
		name:        name,
		location:    location,
		openingTime: openingTime,
		closingTime: closingTime,
		menu:        repository.NewInMemoryMenuRepository(),
		clock:       clockwork.NewRealClock(),
		out:         os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Restaurant) Name() string { return r.name }

func (r *Restaurant) Location() string { return r.location }

func (r *Restaurant) OpeningTime() TimeOfDay { return r.openingTime }

func (r *Restaurant) ClosingTime() TimeOfDay { return r.closingTime }

// CurrentTime returns the clock's time of day
func (r *Restaurant) CurrentTime() TimeOfDay {
	return TimeOfDayOf(r.clock.Now())
}

// IsOpen reports whether the current time falls strictly inside the operating window.
// Opening and closing instants count as closed.
func (r *Restaurant) IsOpen() bool {
	now := r.CurrentTime()
	return now.After(r.openingTime) && now.Before(r.closingTime)
}

// AddMenuItem appends an item to the end of the menu. Duplicate names are allowed.
func (r *Restaurant) AddMenuItem(name string, price int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative, got %d", ErrInvalidMenuItem, price)
	}
	r.menu.Add(models.MenuItem{Name: name, Price: price})
	return nil
}

// RemoveMenuItem removes the first item named name.
// The error wraps ErrItemNotFound when nothing matches.
func (r *Restaurant) RemoveMenuItem(name string) error {
	return r.menu.Remove(name)
}

// Menu returns a copy of the menu in insertion order
func (r *Restaurant) Menu() []models.MenuItem {
	return r.menu.All()
}

// Details formats the restaurant summary printed by DisplayDetails
func (r *Restaurant) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Restaurant:%s\n", r.name)
	fmt.Fprintf(&b, "Location:%s\n", r.location)
	fmt.Fprintf(&b, "Opening time:%s\n", r.openingTime)
	fmt.Fprintf(&b, "Closing time:%s\n", r.closingTime)
	b.WriteString("Menu:\n")
	b.WriteString(formatMenu(r.menu.All()))
	b.WriteString("\n")
	return b.String()
}

// DisplayDetails writes Details to the output sink
func (r *Restaurant) DisplayDetails() error {
	_, err := io.WriteString(r.out, r.Details())
	return err
}

// OrderCost sums the price of every named item. Repeated names are charged
// repeatedly. An unknown name fails the whole order.
func (r *Restaurant) OrderCost(itemNames []string) (int, error) {
	total := 0
	for _, name := range itemNames {
		item, err := r.menu.Find(name)
		if err != nil {
			return 0, fmt.Errorf("pricing order: %w", err)
		}
		total += item.Price
	}
	return total, nil
}

// OrderCostMessage formats the line printed by DisplayOrderCost
func (r *Restaurant) OrderCostMessage(itemNames []string) (string, error) {
	total, err := r.OrderCost(itemNames)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Your order will cost Rs.%d\n", total), nil
}

// DisplayOrderCost writes the order total to the output sink
func (r *Restaurant) DisplayOrderCost(itemNames []string) error {
	msg, err := r.OrderCostMessage(itemNames)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.out, msg)
	return err
}

// formatMenu lays items out as [a:1\n, b:2\n]
func formatMenu(items []models.MenuItem) string {
	entries := make([]string, len(items))
	for i, item := range items {
		entries[i] = item.String() + "\n"
	}
	return "[" + strings.Join(entries, ", ") + "]"
}

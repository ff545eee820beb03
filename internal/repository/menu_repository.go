package repository

import (
	"errors"
	"fmt"

	"github.com/sainadh7/V-S-Sainadha-Krishna-C-C3-Project/internal/models"
)

var (
	ErrItemNotFound = errors.New("item not found")
)

// ItemNotFoundError reports a menu lookup or removal that matched no item
type ItemNotFoundError struct {
	Name string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrItemNotFound, e.Name)
}

// Is lets errors.Is match ErrItemNotFound
func (e *ItemNotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}

// MenuRepository defines ordered access to menu items
type MenuRepository interface {
	Add(item models.MenuItem)
	Remove(name string) error
	Find(name string) (models.MenuItem, error)
	All() []models.MenuItem
	Len() int
}

// InMemoryMenuRepository keeps menu items in insertion order.
// Names are not required to be unique; lookups and removals use the first match.
// It is not safe for concurrent use.
type InMemoryMenuRepository struct {
	items []models.MenuItem
}

// NewInMemoryMenuRepository creates an empty menu repository
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		items: make([]models.MenuItem, 0),
	}
}

// Add appends an item to the end of the menu
func (r *InMemoryMenuRepository) Add(item models.MenuItem) {
	r.items = append(r.items, item)
}

// Remove deletes the first item whose name matches exactly
func (r *InMemoryMenuRepository) Remove(name string) error {
	i := r.indexOf(name)
	if i < 0 {
		return &ItemNotFoundError{Name: name}
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

// Find returns the first item whose name matches exactly
func (r *InMemoryMenuRepository) Find(name string) (models.MenuItem, error) {
	i := r.indexOf(name)
	if i < 0 {
		return models.MenuItem{}, &ItemNotFoundError{Name: name}
	}
	return r.items[i], nil
}

// All returns a copy of the menu in insertion order
func (r *InMemoryMenuRepository) All() []models.MenuItem {
	items := make([]models.MenuItem, len(r.items))
	copy(items, r.items)
	return items
}

// Len returns the number of items on the menu
func (r *InMemoryMenuRepository) Len() int {
	return len(r.items)
}

func (r *InMemoryMenuRepository) indexOf(name string) int {
	for i, item := range r.items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

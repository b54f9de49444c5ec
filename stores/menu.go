package stores

import (
	"errors"
	"fmt"

	"canteen-order-system/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicate      = errors.New("already exists")
	ErrNegativeStock  = errors.New("stock cannot go below zero")
	ErrBadCredentials = errors.New("invalid username or password")
)

// MenuStore holds menu items in insertion order with an id index.
// It is not safe for concurrent use.
type MenuStore struct {
	items []*models.MenuItem
	byID  map[int]*models.MenuItem
}

// NewMenuStore creates an empty MenuStore
func NewMenuStore() *MenuStore {
	return &MenuStore{byID: make(map[int]*models.MenuItem)}
}

// Add registers a new menu item
func (s *MenuStore) Add(item models.MenuItem) (*models.MenuItem, error) {
	if _, ok := s.byID[item.ID]; ok {
		return nil, fmt.Errorf("menu item %d: %w", item.ID, ErrDuplicate)
	}
	if item.Stock < 0 {
		return nil, fmt.Errorf("menu item %d: %w", item.ID, ErrNegativeStock)
	}
	if item.Price < 0 {
		return nil, fmt.Errorf("menu item %d: negative price %.2f", item.ID, item.Price)
	}

	stored := item
	s.items = append(s.items, &stored)
	s.byID[item.ID] = &stored
	return &stored, nil
}

// Get returns the live menu item for id
func (s *MenuStore) Get(id int) (*models.MenuItem, bool) {
	item, ok := s.byID[id]
	return item, ok
}

// Edit changes name, category and price. Stock is left alone.
func (s *MenuStore) Edit(id int, name string, category models.Category, price float64) error {
	item, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("menu item %d: %w", id, ErrNotFound)
	}
	if price < 0 {
		return fmt.Errorf("menu item %d: negative price %.2f", id, price)
	}
	item.Name = name
	item.Category = category
	item.Price = price
	return nil
}

// AdjustStock adds delta to the item's stock, refusing to go below zero
func (s *MenuStore) AdjustStock(id, delta int) error {
	item, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("menu item %d: %w", id, ErrNotFound)
	}
	if item.Stock+delta < 0 {
		return fmt.Errorf("menu item %d has %d, change %d: %w", id, item.Stock, delta, ErrNegativeStock)
	}
	item.Stock += delta
	return nil
}

// List returns the items in the order they were added
func (s *MenuStore) List() []*models.MenuItem {
	out := make([]*models.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

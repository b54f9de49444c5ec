package models

import (
	"fmt"
	"strings"
)

// Category is the kind of a menu item
type Category string

const (
	CategoryFood    Category = "FOOD"
	CategoryDrink   Category = "DRINK"
	CategoryDessert Category = "DESSERT"
)

// MenuItem represents a sellable item and its available stock
type MenuItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
}

// ParseCategory accepts a category name or its menu index (0-FOOD, 1-DRINK, 2-DESSERT)
func ParseCategory(s string) (Category, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "0", string(CategoryFood):
		return CategoryFood, nil
	case "1", string(CategoryDrink):
		return CategoryDrink, nil
	case "2", string(CategoryDessert):
		return CategoryDessert, nil
	}
	return "", fmt.Errorf("unknown menu category %q", s)
}

package models

import "time"

// Order represents a placed canteen order
type Order struct {
	ID           int         `json:"id"`
	ConsumerName string      `json:"consumer_name"`
	ConsumerUID  string      `json:"consumer_uid"`
	Lines        []OrderLine `json:"lines"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`
}

// OrderLine represents a single menu item within an order.
// Item points at the live menu entry, so name and price are read at display time.
type OrderLine struct {
	Item     *MenuItem `json:"item"`
	Quantity int       `json:"quantity"`
}

// LineTotal returns the current price of the line
func (l OrderLine) LineTotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// LineRequest is a requested (menu item, quantity) pair
type LineRequest struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// ItemCount returns the number of units across all lines
func (o *Order) ItemCount() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}

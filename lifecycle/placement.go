package lifecycle

import (
	"fmt"

	"canteen-order-system/models"
)

// Placement accumulates the lines of one order before it is committed.
//
// Stock is taken as soon as a line is accepted. A later rejected line does not
// give back stock from earlier accepted ones; the placement is immediate-effect
// and not atomic across lines.
type Placement struct {
	c            *Controller
	consumerName string
	consumerUID  string
	lines        []models.OrderLine
	total        float64
	closed       bool
}

// AddLine validates one requested line and, when it is accepted, takes the stock.
// A rejected line returns a *LineError and changes nothing.
func (p *Placement) AddLine(itemID, quantity int) error {
	if p.closed {
		return ErrPlacementClosed
	}
	if quantity <= 0 {
		return &LineError{ItemID: itemID, Quantity: quantity, Err: ErrInvalidQuantity}
	}

	item, ok := p.c.menu.Get(itemID)
	if !ok {
		p.c.logger.Debug("Line rejected", "consumer_uid", p.consumerUID, "item_id", itemID, "reason", "unknown item")
		return &LineError{ItemID: itemID, Quantity: quantity, Err: ErrUnknownItem}
	}
	if item.Stock < quantity {
		p.c.logger.Debug("Line rejected", "consumer_uid", p.consumerUID, "item_id", itemID,
			"requested", quantity, "available", item.Stock)
		return &LineError{ItemID: itemID, Quantity: quantity, Available: item.Stock, Err: ErrInsufficientStock}
	}

	if err := p.c.menu.AdjustStock(itemID, -quantity); err != nil {
		return fmt.Errorf("failed to take stock for item %d: %w", itemID, err)
	}

	p.lines = append(p.lines, models.OrderLine{Item: item, Quantity: quantity})
	p.total += item.Price * float64(quantity)
	return nil
}

// Lines returns the number of accepted lines so far
func (p *Placement) Lines() int { return len(p.lines) }

// Total returns the running total of the accepted lines
func (p *Placement) Total() float64 { return p.total }

// Commit turns the accepted lines into a queued order and records it for undo.
// With no accepted lines the placement is abandoned and ErrNoValidLines returned.
func (p *Placement) Commit() (*models.Order, error) {
	if p.closed {
		return nil, ErrPlacementClosed
	}
	p.closed = true

	if len(p.lines) == 0 {
		p.c.logger.Info("Order abandoned", "consumer_uid", p.consumerUID, "reason", ErrNoValidLines.Error())
		return nil, ErrNoValidLines
	}

	order := p.c.queue.Enqueue(p.c.ids.NextID(), p.consumerName, p.consumerUID, p.lines, p.total)
	p.c.undo.Push(order.ID)

	p.c.logger.Info("Order placed",
		"order_id", order.ID,
		"consumer_uid", order.ConsumerUID,
		"lines", len(order.Lines),
		"units", order.ItemCount(),
		"total", order.Total,
		"queue_length", p.c.queue.Len())
	return order, nil
}

// Package lifecycle places orders, undoes the most recent one and renders bills.
package lifecycle

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"canteen-order-system/models"
	"canteen-order-system/orders"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MenuCatalog is the part of the menu store the lifecycle needs
type MenuCatalog interface {
	Get(id int) (*models.MenuItem, bool)
	AdjustStock(id, delta int) error
}

// ConsumerDirectory is the part of the consumer store the lifecycle needs
type ConsumerDirectory interface {
	Get(uid string) (*models.Consumer, bool)
}

// Deps are the collaborators a Controller works against
type Deps struct {
	Menu      MenuCatalog
	Consumers ConsumerDirectory
	Queue     *orders.Queue
	Undo      *orders.UndoStack
	IDs       IDSource
	Logger    *slog.Logger
}

// Controller orchestrates order placement, undo and billing.
// It is not safe for concurrent use; every call runs to completion before the next.
type Controller struct {
	menu      MenuCatalog
	consumers ConsumerDirectory
	queue     *orders.Queue
	undo      *orders.UndoStack
	ids       IDSource
	logger    *slog.Logger
	printer   *message.Printer
}

// NewController creates a Controller. Missing queue, stack, id source or logger get defaults.
func NewController(d Deps) *Controller {
	c := &Controller{
		menu:      d.Menu,
		consumers: d.Consumers,
		queue:     d.Queue,
		undo:      d.Undo,
		ids:       d.IDs,
		logger:    d.Logger,
		printer:   message.NewPrinter(language.English),
	}
	if c.queue == nil {
		c.queue = orders.NewQueue()
	}
	if c.undo == nil {
		c.undo = orders.NewUndoStack()
	}
	if c.ids == nil {
		c.ids = NewCounter(1)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Begin starts a placement for an existing consumer. Nothing is mutated on failure.
func (c *Controller) Begin(consumerUID string) (*Placement, error) {
	consumer, ok := c.consumers.Get(consumerUID)
	if !ok {
		c.logger.Warn("Order rejected", "consumer_uid", consumerUID, "reason", ErrUnknownConsumer.Error())
		return nil, fmt.Errorf("consumer %s: %w", consumerUID, ErrUnknownConsumer)
	}
	return &Placement{
		c:            c,
		consumerName: consumer.Name,
		consumerUID:  consumer.UID,
	}, nil
}

// PlaceOrder runs every request through a placement in input order and commits
// whatever was accepted. Rejected lines are reported, not retried.
func (c *Controller) PlaceOrder(consumerUID string, requests []models.LineRequest) (*models.Order, []LineRejection, error) {
	p, err := c.Begin(consumerUID)
	if err != nil {
		return nil, nil, err
	}

	var rejections []LineRejection
	for i, req := range requests {
		err := p.AddLine(req.ItemID, req.Quantity)
		if err == nil {
			continue
		}
		var lineErr *LineError
		if !errors.As(err, &lineErr) {
			return nil, rejections, err
		}
		rejections = append(rejections, LineRejection{Index: i, ItemID: req.ItemID, Reason: lineErr})
	}

	order, err := p.Commit()
	if err != nil {
		return nil, rejections, err
	}
	return order, rejections, nil
}

// UndoLastOrder reverses the most recent placement still on the undo stack
func (c *Controller) UndoLastOrder() (*models.Order, error) {
	// Step 1: Pop the most recent placement
	orderID, ok := c.undo.Pop()
	if !ok {
		c.logger.Info("Undo requested with empty stack")
		return nil, ErrNothingToUndo
	}

	order, ok := c.queue.Find(orderID)
	if !ok {
		c.logger.Error("Undo target missing from queue", "order_id", orderID)
		return nil, fmt.Errorf("order %d: %w", orderID, ErrOrderNotQueued)
	}

	// Step 2: Give the stock back
	c.restoreStock(order)

	// Step 3: Drop the order from the queue
	if !c.queue.Remove(order) {
		c.logger.Error("Undo target vanished from queue", "order_id", orderID)
		return nil, fmt.Errorf("order %d: %w", orderID, ErrOrderNotQueued)
	}

	c.logger.Info("Order undone",
		"order_id", order.ID,
		"consumer_uid", order.ConsumerUID,
		"total", order.Total,
		"queue_length", c.queue.Len(),
		"undo_depth", c.undo.Len())
	return order, nil
}

// CancelLastOrderFor undoes the most recent placement only if consumerUID placed it
func (c *Controller) CancelLastOrderFor(consumerUID string) (*models.Order, error) {
	orderID, ok := c.undo.Peek()
	if !ok {
		return nil, ErrNothingToUndo
	}
	order, ok := c.queue.Find(orderID)
	if !ok {
		c.logger.Error("Cancel target missing from queue", "order_id", orderID)
		return nil, fmt.Errorf("order %d: %w", orderID, ErrOrderNotQueued)
	}
	if order.ConsumerUID != consumerUID {
		c.logger.Warn("Cancel refused", "order_id", orderID, "consumer_uid", consumerUID, "owner_uid", order.ConsumerUID)
		return nil, ErrNotOwner
	}
	return c.UndoLastOrder()
}

// ServeNext hands out the oldest queued order
func (c *Controller) ServeNext() (*models.Order, error) {
	order, ok := c.queue.Dequeue()
	if !ok {
		return nil, ErrQueueEmpty
	}
	c.logger.Info("Order served", "order_id", order.ID, "queue_length", c.queue.Len())
	return order, nil
}

// Orders returns the outstanding orders in placement order
func (c *Controller) Orders() []*models.Order {
	return c.queue.List()
}

// OrdersFor returns the outstanding orders placed by consumerUID
func (c *Controller) OrdersFor(consumerUID string) []*models.Order {
	var out []*models.Order
	for _, o := range c.queue.List() {
		if o.ConsumerUID == consumerUID {
			out = append(out, o)
		}
	}
	return out
}

// UndoDepth returns how many placements can still be undone
func (c *Controller) UndoDepth() int {
	return c.undo.Len()
}

func (c *Controller) restoreStock(order *models.Order) {
	for _, line := range order.Lines {
		if err := c.menu.AdjustStock(line.Item.ID, line.Quantity); err != nil {
			c.logger.Error("Failed to restore stock",
				"order_id", order.ID,
				"item_id", line.Item.ID,
				"quantity", line.Quantity,
				"error", err)
		}
	}
}

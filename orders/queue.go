// Package orders holds the outstanding-order queue and the undo stack layered on it.
package orders

import (
	"time"

	"canteen-order-system/models"
)

// Queue is a FIFO of placed orders. It owns the orders it holds;
// anything else referring to them (the undo stack) does so by id.
// It is not safe for concurrent use.
type Queue struct {
	orders []*models.Order
	now    func() time.Time
}

// NewQueue creates an empty Queue stamping orders with time.Now
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// NewQueueWithClock creates an empty Queue stamping orders with now
func NewQueueWithClock(now func() time.Time) *Queue {
	return &Queue{now: now}
}

// Enqueue builds an order from the given fields and appends it at the tail
func (q *Queue) Enqueue(id int, consumerName, consumerUID string, lines []models.OrderLine, total float64) *models.Order {
	order := &models.Order{
		ID:           id,
		ConsumerName: consumerName,
		ConsumerUID:  consumerUID,
		Lines:        lines,
		Total:        total,
		CreatedAt:    q.now(),
	}
	q.orders = append(q.orders, order)
	return order
}

// Dequeue removes and returns the head order. ok is false when the queue is empty.
func (q *Queue) Dequeue() (order *models.Order, ok bool) {
	if len(q.orders) == 0 {
		return nil, false
	}
	order = q.orders[0]
	q.orders[0] = nil
	q.orders = q.orders[1:]
	return order, true
}

// Remove excises exactly this order instance wherever it sits in the queue
func (q *Queue) Remove(order *models.Order) bool {
	for i, o := range q.orders {
		if o != order {
			continue
		}
		copy(q.orders[i:], q.orders[i+1:])
		q.orders[len(q.orders)-1] = nil
		q.orders = q.orders[:len(q.orders)-1]
		return true
	}
	return false
}

// Find returns the newest queued order with the given id
func (q *Queue) Find(id int) (*models.Order, bool) {
	for i := len(q.orders) - 1; i >= 0; i-- {
		if q.orders[i].ID == id {
			return q.orders[i], true
		}
	}
	return nil, false
}

// List returns the queued orders in placement order
func (q *Queue) List() []*models.Order {
	out := make([]*models.Order, len(q.orders))
	copy(out, q.orders)
	return out
}

// Len returns the number of queued orders
func (q *Queue) Len() int {
	return len(q.orders)
}

package lifecycle_test

import (
	"math"
	"testing"

	"canteen-order-system/models"

	"pgregory.net/rapid"
)

// Random placements and undos must conserve stock and keep queue and stack in step
func TestLifecycle_Invariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := newCanteen()
		initial := c.stocks()
		prices := make(map[int]float64)
		for _, m := range c.menu.List() {
			prices[m.ID] = m.Price
		}
		placed := make(map[int]int)

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "undo") {
				depth := c.ctrl.UndoDepth()
				order, err := c.ctrl.UndoLastOrder()
				if depth == 0 {
					if err == nil {
						t.Fatalf("undo on empty stack succeeded")
					}
					continue
				}
				if err != nil {
					t.Fatalf("undo failed: %v", err)
				}
				for _, l := range order.Lines {
					placed[l.Item.ID] -= l.Quantity
				}
				continue
			}

			n := rapid.IntRange(0, 4).Draw(t, "lines")
			requests := make([]models.LineRequest, 0, n)
			for j := 0; j < n; j++ {
				requests = append(requests, models.LineRequest{
					ItemID:   rapid.IntRange(0, 5).Draw(t, "item"),
					Quantity: rapid.IntRange(-1, 25).Draw(t, "qty"),
				})
			}

			queueBefore, stackBefore := c.queue.Len(), c.undo.Len()
			order, rejected, err := c.ctrl.PlaceOrder("C001", requests)
			if err != nil {
				if len(rejected) != len(requests) {
					t.Fatalf("placement failed with %d of %d lines rejected: %v", len(rejected), len(requests), err)
				}
				if c.queue.Len() != queueBefore || c.undo.Len() != stackBefore {
					t.Fatalf("failed placement changed queue or stack")
				}
				continue
			}

			if c.queue.Len() != queueBefore+1 || c.undo.Len() != stackBefore+1 {
				t.Fatalf("placement must add exactly one queue entry and one undo entry")
			}
			want := 0.0
			for _, l := range order.Lines {
				want += prices[l.Item.ID] * float64(l.Quantity)
				placed[l.Item.ID] += l.Quantity
			}
			if math.Abs(want-order.Total) > 1e-9 {
				t.Fatalf("total %.2f, want %.2f", order.Total, want)
			}
		}

		// Stock taken equals what the outstanding orders hold
		for id, start := range initial {
			got := c.stock(id)
			if got < 0 {
				t.Fatalf("item %d went negative: %d", id, got)
			}
			if start-got != placed[id] {
				t.Fatalf("item %d: %d taken, orders hold %d", id, start-got, placed[id])
			}
		}

		// Undoing everything brings the menu back to where it started
		for c.ctrl.UndoDepth() > 0 {
			if _, err := c.ctrl.UndoLastOrder(); err != nil {
				t.Fatalf("undo failed: %v", err)
			}
		}
		for id, start := range initial {
			if c.stock(id) != start {
				t.Fatalf("item %d: stock %d after full undo, want %d", id, c.stock(id), start)
			}
		}
		if c.queue.Len() != 0 {
			t.Fatalf("queue not empty after full undo")
		}
	})
}

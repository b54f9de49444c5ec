package orders_test

import (
	"testing"
	"time"

	"canteen-order-system/models"
	"canteen-order-system/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var tea = &models.MenuItem{ID: 1, Name: "Tea", Category: models.CategoryDrink, Price: 15.0, Stock: 50}

func lines(qty int) []models.OrderLine {
	return []models.OrderLine{{Item: tea, Quantity: qty}}
}

func ids(list []*models.Order) []int {
	out := make([]int, 0, len(list))
	for _, o := range list {
		out = append(out, o.ID)
	}
	return out
}

func TestQueue_EnqueueStampsAndAppends(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	q := orders.NewQueueWithClock(func() time.Time { return fixed })

	first := q.Enqueue(1, "Alice", "C001", lines(2), 30.0)
	second := q.Enqueue(2, "Bob", "C002", lines(1), 15.0)

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []int{1, 2}, ids(q.List()))
	assert.Equal(t, fixed, first.CreatedAt)
	assert.Equal(t, "Bob", second.ConsumerName)
	assert.Equal(t, "C002", second.ConsumerUID)
	assert.Equal(t, 15.0, second.Total)
}

func TestQueue_Dequeue(t *testing.T) {
	q := orders.NewQueue()

	_, ok := q.Dequeue()
	assert.False(t, ok, "empty queue should report nothing to dequeue")

	q.Enqueue(1, "Alice", "C001", lines(1), 15.0)
	q.Enqueue(2, "Alice", "C001", lines(1), 15.0)

	head, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 1, head.ID)
	assert.Equal(t, 1, q.Len())

	head, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 2, head.ID)

	_, ok = q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_Remove(t *testing.T) {
	tests := []struct {
		name      string
		removeIdx int
		want      []int
	}{
		{name: "Success - Head", removeIdx: 0, want: []int{2, 3}},
		{name: "Success - Middle", removeIdx: 1, want: []int{1, 3}},
		{name: "Success - Tail", removeIdx: 2, want: []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := orders.NewQueue()
			placed := []*models.Order{
				q.Enqueue(1, "A", "C1", lines(1), 15),
				q.Enqueue(2, "B", "C2", lines(1), 15),
				q.Enqueue(3, "C", "C3", lines(1), 15),
			}

			assert.True(t, q.Remove(placed[tt.removeIdx]))
			assert.Equal(t, tt.want, ids(q.List()))

			// The tail must still be where new orders land
			q.Enqueue(4, "D", "C4", lines(1), 15)
			assert.Equal(t, append(tt.want, 4), ids(q.List()))
		})
	}
}

func TestQueue_RemoveMatchesIdentityNotID(t *testing.T) {
	q := orders.NewQueue()
	q.Enqueue(7, "A", "C1", lines(1), 15)

	lookalike := &models.Order{ID: 7, ConsumerUID: "C1"}
	assert.False(t, q.Remove(lookalike))
	assert.Equal(t, 1, q.Len())
}

func TestQueue_FindPrefersNewest(t *testing.T) {
	q := orders.NewQueue()
	q.Enqueue(5, "Old", "C1", lines(1), 15)
	newer := q.Enqueue(5, "New", "C2", lines(1), 15)

	got, ok := q.Find(5)
	require.True(t, ok)
	assert.Same(t, newer, got)

	_, ok = q.Find(99)
	assert.False(t, ok)
}

func TestQueue_ListIsACopy(t *testing.T) {
	q := orders.NewQueue()
	q.Enqueue(1, "A", "C1", lines(1), 15)

	list := q.List()
	list[0] = nil

	assert.NotNil(t, q.List()[0])
}

// Random enqueue/dequeue/remove sequences must match a plain slice model
func TestQueue_MatchesSliceModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := orders.NewQueue()
		var model []*models.Order
		nextID := 1

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				model = append(model, q.Enqueue(nextID, "X", "C", lines(1), 15))
				nextID++
			case 1:
				got, ok := q.Dequeue()
				if len(model) == 0 {
					assert.False(t, ok)
					continue
				}
				require.True(t, ok)
				assert.Same(t, model[0], got)
				model = model[1:]
			case 2:
				if len(model) == 0 {
					continue
				}
				idx := rapid.IntRange(0, len(model)-1).Draw(t, "idx")
				require.True(t, q.Remove(model[idx]))
				model = append(model[:idx:idx], model[idx+1:]...)
			}
			require.Equal(t, len(model), q.Len())
		}
		assert.Equal(t, ids(model), ids(q.List()))
	})
}

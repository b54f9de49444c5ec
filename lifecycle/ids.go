package lifecycle

// IDSource hands out order ids
type IDSource interface {
	NextID() int
}

// Counter is a monotonic IDSource and the single authority for order ids
type Counter struct {
	next int
}

// NewCounter creates a Counter whose first id is start (1 when start < 1)
func NewCounter(start int) *Counter {
	if start < 1 {
		start = 1
	}
	return &Counter{next: start}
}

func (c *Counter) NextID() int {
	id := c.next
	c.next++
	return id
}

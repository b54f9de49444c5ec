package orders

// UndoStack is a LIFO of recently placed order ids.
// It never holds order data, so dropping entries cannot affect the queue.
type UndoStack struct {
	ids []int
}

// NewUndoStack creates an empty UndoStack
func NewUndoStack() *UndoStack {
	return &UndoStack{}
}

// Push records orderID as the most recent placement
func (s *UndoStack) Push(orderID int) {
	s.ids = append(s.ids, orderID)
}

// Pop removes and returns the top id
func (s *UndoStack) Pop() (int, bool) {
	if len(s.ids) == 0 {
		return 0, false
	}
	top := s.ids[len(s.ids)-1]
	s.ids = s.ids[:len(s.ids)-1]
	return top, true
}

// Peek returns the top id without removing it
func (s *UndoStack) Peek() (int, bool) {
	if len(s.ids) == 0 {
		return 0, false
	}
	return s.ids[len(s.ids)-1], true
}

func (s *UndoStack) Empty() bool { return len(s.ids) == 0 }

func (s *UndoStack) Len() int { return len(s.ids) }

package lifecycle

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownConsumer   = errors.New("consumer not found")
	ErrUnknownItem       = errors.New("invalid menu item")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrNoValidLines      = errors.New("no valid items ordered")
	ErrPlacementClosed   = errors.New("placement already finished")
	ErrNothingToUndo     = errors.New("no order to undo")
	ErrOrderNotQueued    = errors.New("order not found in queue")
	ErrNotOwner          = errors.New("last order does not belong to this consumer")
	ErrQueueEmpty        = errors.New("no orders in queue")
)

// LineError reports why a single requested line was rejected
type LineError struct {
	ItemID    int
	Quantity  int
	Available int
	Err       error
}

func (e *LineError) Error() string {
	if errors.Is(e.Err, ErrInsufficientStock) {
		return fmt.Sprintf("item %d x%d: %v (available: %d)", e.ItemID, e.Quantity, e.Err, e.Available)
	}
	return fmt.Sprintf("item %d x%d: %v", e.ItemID, e.Quantity, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// LineRejection pairs a rejected request with its position in the input
type LineRejection struct {
	Index  int
	ItemID int
	Reason error
}

package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"canteen-order-system/lifecycle"
	"canteen-order-system/models"
	"canteen-order-system/stores"

	"github.com/google/uuid"
)

// session is the state shared by the admin and kiosk flows
type session struct {
	id     string
	p      *prompter
	ctrl   *lifecycle.Controller
	menu   *stores.MenuStore
	logger *slog.Logger
}

func newSession(p *prompter, ctrl *lifecycle.Controller, menu *stores.MenuStore, logger *slog.Logger) session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.NewString()
	return session{
		id:     id,
		p:      p,
		ctrl:   ctrl,
		menu:   menu,
		logger: logger.With("session_id", id),
	}
}

// takeOrder asks for a number of lines and fills each slot, retrying a slot until
// it is accepted or input runs out, then commits the placement.
func (s *session) takeOrder(placement *lifecycle.Placement) (*models.Order, error) {
	count, ok, err := s.p.askInt("How many items? ")
	for ok && err != nil {
		s.p.printf("Invalid input: %v\n", err)
		count, ok, err = s.p.askInt("How many items? ")
	}

	for slot := 1; ok && slot <= count; {
		var fields []string
		fields, ok, err = s.p.askFields(fmt.Sprintf("Item %d - Enter Menu ID and Quantity: ", slot), 2)
		if !ok {
			break
		}
		if err != nil {
			s.p.printf("Invalid input: %v\n", err)
			continue
		}
		itemID, qty, err := atoi2(fields[0], fields[1])
		if err != nil {
			s.p.printf("Invalid input: %v\n", err)
			continue
		}
		if err := placement.AddLine(itemID, qty); err != nil {
			s.p.printf("%s\n", lineMessage(err))
			continue
		}
		slot++
	}

	order, err := placement.Commit()
	if errors.Is(err, lifecycle.ErrNoValidLines) {
		s.p.printf("No valid items ordered.\n")
		return nil, err
	}
	if err != nil {
		s.p.printf("Failed to place order: %v\n", err)
		return nil, err
	}
	s.p.printf("Order placed successfully! Order ID: %d, Total: %.2f\n", order.ID, order.Total)
	return order, nil
}

func lineMessage(err error) string {
	var lineErr *lifecycle.LineError
	switch {
	case errors.Is(err, lifecycle.ErrUnknownItem):
		return "Invalid Menu ID!"
	case errors.As(err, &lineErr) && errors.Is(err, lifecycle.ErrInsufficientStock):
		return fmt.Sprintf("Insufficient stock! Available: %d", lineErr.Available)
	case errors.Is(err, lifecycle.ErrInvalidQuantity):
		return "Quantity must be greater than 0!"
	}
	return err.Error()
}

func (s *session) endOfInput() error {
	if err := s.p.err(); err != nil {
		return err
	}
	return ErrEndOfInput
}

// reportUndo prints the outcome of an undo
func (s *session) reportUndo(order *models.Order, err error) {
	switch {
	case err == nil:
		s.p.printf("Order ID %d undone successfully. Stock restored.\n", order.ID)
	case errors.Is(err, lifecycle.ErrNothingToUndo):
		s.p.printf("No order to undo.\n")
	case errors.Is(err, lifecycle.ErrOrderNotQueued):
		s.p.printf("Error: Order not found in queue.\n")
	default:
		s.p.printf("Undo failed: %v\n", err)
	}
}

package console

import (
	"errors"
	"io"
	"log/slog"

	"canteen-order-system/lifecycle"
	"canteen-order-system/models"
	"canteen-order-system/stores"
)

const kioskMenuText = `
--- Consumer Menu ---
1. View Menu
2. Place Order
3. Cancel Last Order
4. View My Orders
0. Exit
`

// KioskSession is the self-service console for a single consumer
type KioskSession struct {
	session
	consumers *stores.ConsumerStore
	consumer  *models.Consumer
}

// NewKioskSession creates a KioskSession reading from in and writing to out
func NewKioskSession(in io.Reader, out io.Writer, ctrl *lifecycle.Controller, menu *stores.MenuStore,
	consumers *stores.ConsumerStore, logger *slog.Logger) *KioskSession {
	return &KioskSession{
		session:   newSession(newPrompter(in, out), ctrl, menu, logger),
		consumers: consumers,
	}
}

// Identify asks for name and uid, registering the consumer on first visit
func (s *KioskSession) Identify() (*models.Consumer, error) {
	name, ok := s.p.ask("Enter your name: ")
	if !ok {
		return nil, s.endOfInput()
	}
	uid, ok := s.p.ask("Enter your UID: ")
	for ok && uid == "" {
		uid, ok = s.p.ask("Enter your UID: ")
	}
	if !ok {
		return nil, s.endOfInput()
	}

	c, created, err := s.consumers.GetOrCreate(uid, name)
	if err != nil {
		return nil, err
	}
	if created {
		s.p.printf("New consumer added: %s [%s]\n", c.Name, c.UID)
		s.logger.Info("Consumer registered", "consumer_uid", c.UID)
	}
	s.consumer = c
	s.logger = s.logger.With("consumer_uid", c.UID)
	return c, nil
}

// Run identifies the consumer and serves the kiosk menu until exit or end of input
func (s *KioskSession) Run() error {
	if _, err := s.Identify(); err != nil {
		return err
	}

	for {
		s.p.printf("%s", kioskMenuText)
		choice, ok, err := s.p.askInt("Enter choice: ")
		if !ok {
			return s.p.err()
		}
		if err != nil {
			s.p.printf("Invalid choice!\n")
			continue
		}

		switch choice {
		case 1:
			writeMenu(s.p.out, s.menu.List())
		case 2:
			s.placeOrder()
		case 3:
			s.cancelLastOrder()
		case 4:
			s.p.printf("\n--- Past Orders for %s [%s] ---\n", s.consumer.Name, s.consumer.UID)
			if _, err := s.ctrl.WriteConsumerBills(s.p.out, s.consumer.UID); err != nil {
				return err
			}
		case 0:
			s.p.printf("Exiting Consumer Interface...\n")
			return nil
		default:
			s.p.printf("Invalid choice!\n")
		}
	}
}

func (s *KioskSession) placeOrder() {
	placement, err := s.ctrl.Begin(s.consumer.UID)
	if err != nil {
		s.p.printf("Consumer not found!\n")
		return
	}
	s.p.printf("\n--- Place Order for %s [%s] ---\n", s.consumer.Name, s.consumer.UID)
	writeMenu(s.p.out, s.menu.List())
	_, _ = s.takeOrder(placement)
}

func (s *KioskSession) cancelLastOrder() {
	order, err := s.ctrl.CancelLastOrderFor(s.consumer.UID)
	switch {
	case err == nil:
		s.p.printf("\nCancelling Order ID: %d\n", order.ID)
		s.p.printf("Total Amount: %.2f\n", order.Total)
		s.p.printf("Order cancelled successfully! Amount refunded.\n")
	case errors.Is(err, lifecycle.ErrNothingToUndo):
		s.p.printf("No order to cancel.\n")
	case errors.Is(err, lifecycle.ErrNotOwner):
		s.p.printf("Last order does not belong to you. Cannot cancel.\n")
	default:
		s.p.printf("Failed to cancel order.\n")
	}
}

package lifecycle

import (
	"io"
	"strings"
	"time"

	"canteen-order-system/models"
)

const billRule = "----------------------------------------"

// WriteOrders lists every outstanding order with its lines
func (c *Controller) WriteOrders(w io.Writer) error {
	queued := c.queue.List()
	if len(queued) == 0 {
		_, err := io.WriteString(w, "No orders in queue.\n")
		return err
	}

	p := c.printer
	for _, o := range queued {
		if _, err := p.Fprintf(w, "\n=== Order ID: %d ===\n", o.ID); err != nil {
			return err
		}
		p.Fprintf(w, "Consumer: %s [%s]\n", o.ConsumerName, o.ConsumerUID)
		p.Fprintf(w, "Total Amount: %.2f\n", o.Total)
		p.Fprintf(w, "Order Time: %s\n", o.CreatedAt.Format(time.ANSIC))
		p.Fprintf(w, "Items:\n")
		for _, l := range o.Lines {
			p.Fprintf(w, "  - %s x%d @ %.2f each\n", l.Item.Name, l.Quantity, l.Item.Price)
		}
		if _, err := p.Fprintf(w, "%s\n", strings.Repeat("=", 24)); err != nil {
			return err
		}
	}
	return nil
}

// WriteBill renders one order as a customer bill.
// Line prices are read from the menu now; the total is the one fixed at placement.
func (c *Controller) WriteBill(w io.Writer, o *models.Order) error {
	p := c.printer
	p.Fprintf(w, "\n%s\n", strings.Repeat("=", len(billRule)))
	p.Fprintf(w, "           BILL\n")
	p.Fprintf(w, "%s\n", strings.Repeat("=", len(billRule)))
	p.Fprintf(w, "Order ID: %d\n", o.ID)
	p.Fprintf(w, "Customer: %s [%s]\n", o.ConsumerName, o.ConsumerUID)
	p.Fprintf(w, "Date: %s\n", o.CreatedAt.Format(time.ANSIC))
	p.Fprintf(w, "%s\n", billRule)
	p.Fprintf(w, "%-20s %5s %8s %10s\n", "Item", "Qty", "Price", "Total")
	p.Fprintf(w, "%s\n", billRule)
	for _, l := range o.Lines {
		p.Fprintf(w, "%-20s %5d %8.2f %10.2f\n", l.Item.Name, l.Quantity, l.Item.Price, l.LineTotal())
	}
	p.Fprintf(w, "%s\n", billRule)
	p.Fprintf(w, "TOTAL: %.2f\n", o.Total)
	p.Fprintf(w, "%s\n", strings.Repeat("=", len(billRule)))
	_, err := p.Fprintf(w, "      Thank you! Visit again!\n\n")
	return err
}

// WriteConsumerBills prints a bill for each outstanding order of consumerUID
// and returns how many were printed.
func (c *Controller) WriteConsumerBills(w io.Writer, consumerUID string) (int, error) {
	mine := c.OrdersFor(consumerUID)
	if len(mine) == 0 {
		_, err := io.WriteString(w, "No past orders.\n")
		return 0, err
	}
	for _, o := range mine {
		if err := c.WriteBill(w, o); err != nil {
			return 0, err
		}
	}
	return len(mine), nil
}

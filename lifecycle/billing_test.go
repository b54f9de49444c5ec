package lifecycle_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"canteen-order-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOrders(t *testing.T) {
	c := newCanteen()

	var out bytes.Buffer
	require.NoError(t, c.ctrl.WriteOrders(&out))
	assert.Equal(t, "No orders in queue.\n", out.String())

	order, _, err := c.ctrl.PlaceOrder("C002", []models.LineRequest{
		{ItemID: 3, Quantity: 2},
		{ItemID: 2, Quantity: 1},
	})
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, c.ctrl.WriteOrders(&out))
	got := out.String()
	assert.Contains(t, got, "=== Order ID: 1 ===")
	assert.Contains(t, got, "Consumer: Bob [C002]")
	assert.Contains(t, got, "Total Amount: 65.00")
	assert.Contains(t, got, "Order Time: "+order.CreatedAt.Format(time.ANSIC))
	assert.Contains(t, got, "  - Samosa x2 @ 20.00 each")
	assert.Contains(t, got, "  - Coffee x1 @ 25.00 each")
}

func TestWriteBill_LivePricesFixedTotal(t *testing.T) {
	c := newCanteen()

	order, _, err := c.ctrl.PlaceOrder("C001", []models.LineRequest{{ItemID: 1, Quantity: 5}})
	require.NoError(t, err)

	// Price change after placement shows on the lines, not the total
	require.NoError(t, c.menu.Edit(1, "Masala Tea", models.CategoryDrink, 20.0))

	var out bytes.Buffer
	require.NoError(t, c.ctrl.WriteBill(&out, order))
	got := out.String()

	assert.Contains(t, got, "BILL")
	assert.Contains(t, got, "Order ID: 1")
	assert.Contains(t, got, "Customer: Alice [C001]")
	assert.Contains(t, got, "Masala Tea")
	assert.Contains(t, got, "100.00")
	assert.Contains(t, got, "TOTAL: 75.00")
	assert.Contains(t, got, "Thank you! Visit again!")
}

func TestWriteConsumerBills(t *testing.T) {
	c := newCanteen()

	var out bytes.Buffer
	n, err := c.ctrl.WriteConsumerBills(&out, "C001")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "No past orders.\n", out.String())

	for _, uid := range []string{"C001", "C002", "C001"} {
		_, _, err := c.ctrl.PlaceOrder(uid, []models.LineRequest{{ItemID: 4, Quantity: 1}})
		require.NoError(t, err)
	}

	out.Reset()
	n, err = c.ctrl.WriteConsumerBills(&out, "C001")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, out.String(), "Order ID: 1")
	assert.Contains(t, out.String(), "Order ID: 3")
	assert.NotContains(t, out.String(), "Order ID: 2")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteOrders_WriterError(t *testing.T) {
	c := newCanteen()
	assert.Error(t, c.ctrl.WriteOrders(failingWriter{}))

	_, _, err := c.ctrl.PlaceOrder("C001", []models.LineRequest{{ItemID: 1, Quantity: 1}})
	require.NoError(t, err)
	assert.Error(t, c.ctrl.WriteOrders(failingWriter{}))
}

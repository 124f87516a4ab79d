package order_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()

	if len(items) == 0 {
		items = []*order.Item{newTestItem(t)}
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Sharma Constructions",
		"sales.user",
		testCreatedAt,
		false,
		"INR",
		"Plot 14, Industrial Area",
		"27AAACS1234F1Z5",
		items,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create an order", func(t *testing.T) {
		item := newTestItem(t)
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, "Sharma Constructions", "sales.user", testCreatedAt, true, "INR", "Plot 14", "27AAACS1234F1Z5", []*order.Item{item})

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "Sharma Constructions", o.CustomerName())
		assert.Equal(t, "sales.user", o.CreatedBy())
		assert.Equal(t, testCreatedAt, o.CreatedAt())
		assert.True(t, o.IsUrgent())
		assert.Equal(t, "INR", o.Currency())
		assert.Equal(t, "Plot 14", o.Address())
		assert.Equal(t, "27AAACS1234F1Z5", o.TaxID())
		assert.Len(t, o.Items(), 1)
		assert.True(t, o.IsFullyPending())
		assert.False(t, o.IsFullyDispatched())
		assert.NoError(t, o.Validate())
	})

	t.Run("address and tax id are optional", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Walk-in", "sales.user", testCreatedAt, false, "INR", "", "", []*order.Item{newTestItem(t)})

		require.NoError(t, err)
		assert.Empty(t, o.Address())
		assert.Empty(t, o.TaxID())
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		item := newTestItem(t)
		testCases := []struct {
			name         string
			customerName string
			createdBy    string
			createdAt    time.Time
			currency     string
			items        []*order.Item
			expected     string
		}{
			{"empty customer name", "", "sales.user", testCreatedAt, "INR", []*order.Item{item}, "customer name"},
			{"empty creator", "Sharma Constructions", "", testCreatedAt, "INR", []*order.Item{item}, "created by"},
			{"zero created at", "Sharma Constructions", "sales.user", time.Time{}, "INR", []*order.Item{item}, "created at"},
			{"lowercase currency", "Sharma Constructions", "sales.user", testCreatedAt, "inr", []*order.Item{item}, "currency is invalid"},
			{"short currency", "Sharma Constructions", "sales.user", testCreatedAt, "IN", []*order.Item{item}, "currency is invalid"},
			{"long currency", "Sharma Constructions", "sales.user", testCreatedAt, "INRX", []*order.Item{item}, "currency is invalid"},
			{"no items", "Sharma Constructions", "sales.user", testCreatedAt, "INR", nil, "items"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(kernel.NewUUID(), tc.customerName, tc.createdBy, tc.createdAt, false, tc.currency, "", "", tc.items)

				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expected)
			})
		}
	})

	t.Run("should reject unconstructed items", func(t *testing.T) {
		var zero order.Item

		_, err := order.NewOrder(kernel.NewUUID(), "Sharma Constructions", "sales.user", testCreatedAt, false, "INR", "", "", []*order.Item{&zero})

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore an order with dispatched lines", func(t *testing.T) {
		qty := 20
		at := testCreatedAt.Add(48 * time.Hour)
		by := "dispatch.user"
		dispatched, err := order.RestoreItem(kernel.NewUUID(), "Cement", 50, "BAG", 320.0, order.Dispatched, &qty, &at, &by)
		require.NoError(t, err)
		pending := newTestItem(t)

		o, err := order.RestoreOrder(kernel.NewUUID(), "Sharma Constructions", "sales.user", testCreatedAt, true, "INR", "", "", []*order.Item{dispatched, pending})

		require.NoError(t, err)
		assert.False(t, o.IsFullyPending())
		assert.False(t, o.IsFullyDispatched())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order is invalid", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Item(t *testing.T) {
	t.Run("should find an item by id", func(t *testing.T) {
		item := newTestItem(t)
		o := newTestOrder(t, item)

		found, err := o.Item(item.ID())

		require.NoError(t, err)
		assert.True(t, found.IsEqual(item))
	})

	t.Run("should return not found for a foreign id", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.Item(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_SetUrgent(t *testing.T) {
	t.Run("should flag a fully pending order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.SetUrgent(true))
		assert.True(t, o.IsUrgent())

		require.NoError(t, o.SetUrgent(false))
		assert.False(t, o.IsUrgent())
	})

	t.Run("should refuse once any line is dispatched", func(t *testing.T) {
		first := newTestItem(t)
		second := newTestItem(t)
		o := newTestOrder(t, first, second)
		require.NoError(t, o.DispatchItem(first.ID(), 10, "dispatch.user", time.Now()))

		err := o.SetUrgent(true)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.False(t, o.IsUrgent())
	})
}

func TestOrder_EditItem(t *testing.T) {
	t.Run("should edit a pending line", func(t *testing.T) {
		item := newTestItem(t)
		o := newTestOrder(t, item)

		err := o.EditItem(item.ID(), "White Cement", 30, "BAG", 410.0)

		require.NoError(t, err)
		edited, err := o.Item(item.ID())
		require.NoError(t, err)
		assert.Equal(t, "White Cement", edited.ProductName())
	})

	t.Run("should refuse a dispatched line", func(t *testing.T) {
		item := newTestItem(t)
		o := newTestOrder(t, item)
		require.NoError(t, o.DispatchItem(item.ID(), 50, "dispatch.user", time.Now()))

		err := o.EditItem(item.ID(), "White Cement", 30, "BAG", 410.0)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("should refuse a missing line", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.EditItem(kernel.NewUUID(), "White Cement", 30, "BAG", 410.0)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_DispatchItem(t *testing.T) {
	t.Run("lines are dispatched independently", func(t *testing.T) {
		first := newTestItem(t)
		second := newTestItem(t)
		o := newTestOrder(t, first, second)

		require.NoError(t, o.DispatchItem(first.ID(), 50, "dispatch.user", time.Now()))

		dispatched, err := o.Item(first.ID())
		require.NoError(t, err)
		assert.True(t, dispatched.IsDispatched())

		pending, err := o.Item(second.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Pending, pending.Status())
		assert.False(t, o.IsFullyDispatched())

		require.NoError(t, o.DispatchItem(second.ID(), 25, "dispatch.user", time.Now()))
		assert.True(t, o.IsFullyDispatched())
	})

	t.Run("second dispatch of the same line fails", func(t *testing.T) {
		item := newTestItem(t)
		o := newTestOrder(t, item)
		require.NoError(t, o.DispatchItem(item.ID(), 20, "dispatch.user", time.Now()))

		err := o.DispatchItem(item.ID(), 30, "dispatch.user", time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("returned slice is a copy", func(t *testing.T) {
		item := newTestItem(t)
		o := newTestOrder(t, item)

		items := o.Items()
		items[0] = nil

		assert.NotNil(t, o.Items()[0])
	})
}

package order_test

import (
	"testing"
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(t *testing.T, name string, quantity int, price float64) *order.Product {
	t.Helper()
	p, err := order.NewProduct(kernel.NewUUID(), name, quantity, money(t, price))
	require.NoError(t, err)
	return p
}

func allocation(t *testing.T, employee string, products ...*order.Product) *order.Allocation {
	t.Helper()
	a, err := order.NewAllocation(employee, products)
	require.NoError(t, err)
	return a
}

func lunchOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Lunch",
		money(t, 10),
		time.Now(),
		[]*order.Allocation{
			allocation(t, "Amy", product(t, "Pizza", 2, 5)),
			allocation(t, "Bo", product(t, "Salad", 1, 3)),
		},
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order and split fee", func(t *testing.T) {
		o := lunchOrder(t)

		assert.Equal(t, "Lunch", o.Name())
		assert.Equal(t, 2, o.ParticipantCount())
		for _, a := range o.Allocations() {
			assert.Equal(t, "5.00", a.DeliveryShare().String())
		}
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", money(t, 10), time.Now(),
			[]*order.Allocation{allocation(t, "Amy", product(t, "Pizza", 1, 5))})
		require.Error(t, err)
	})

	t.Run("should reject order without countable allocation", func(t *testing.T) {
		// A draft allocation and a named employee without products are both
		// insufficient.
		draft := allocation(t, "", product(t, "Pizza", 1, 5))
		empty := allocation(t, "Amy")

		_, err := order.NewOrder(kernel.NewUUID(), "Lunch", money(t, 10), time.Now(),
			[]*order.Allocation{draft, empty})

		require.ErrorIs(t, err, order.ErrOrderHasNoParticipants)
	})

	t.Run("should reject duplicate employee names", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "Lunch", money(t, 10), time.Now(),
			[]*order.Allocation{
				allocation(t, "Amy", product(t, "Pizza", 1, 5)),
				allocation(t, "Amy", product(t, "Salad", 1, 3)),
			})
		require.Error(t, err)
	})

	t.Run("draft allocations never receive a share", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Lunch", money(t, 10), time.Now(),
			[]*order.Allocation{
				allocation(t, "Amy", product(t, "Pizza", 1, 5)),
				allocation(t, "", product(t, "Pending", 1, 1)),
			})
		require.NoError(t, err)

		assert.Equal(t, 1, o.ParticipantCount())
		allocations := o.Allocations()
		assert.Equal(t, "10.00", allocations[0].DeliveryShare().String())
		assert.True(t, allocations[1].DeliveryShare().IsZero())
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_ChangeDeliveryFee(t *testing.T) {
	t.Run("shares follow the fee", func(t *testing.T) {
		o := lunchOrder(t)

		o.ChangeDeliveryFee(money(t, 7))

		for _, a := range o.Allocations() {
			assert.Equal(t, "3.50", a.DeliveryShare().String())
		}
	})
}

func TestOrder_UpdateProduct(t *testing.T) {
	t.Run("updates product and recomputes total", func(t *testing.T) {
		o := lunchOrder(t)
		productID := o.Allocations()[0].Products()[0].ID()

		quantity := 3
		err := o.UpdateProduct("Amy", productID, order.ProductPatch{Quantity: &quantity})

		require.NoError(t, err)
		updated := o.Allocations()[0].Products()[0]
		assert.Equal(t, "15.00", updated.TotalPrice().String())
	})

	t.Run("fails with not found for unknown employee", func(t *testing.T) {
		o := lunchOrder(t)
		productID := o.Allocations()[0].Products()[0].ID()

		err := o.UpdateProduct("Nobody", productID, order.ProductPatch{})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("fails with not found for unknown product", func(t *testing.T) {
		o := lunchOrder(t)

		err := o.UpdateProduct("Amy", kernel.NewUUID(), order.ProductPatch{})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_RemoveProduct(t *testing.T) {
	t.Run("removing one of several products keeps the allocation", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Lunch", money(t, 10), time.Now(),
			[]*order.Allocation{
				allocation(t, "Amy", product(t, "Pizza", 1, 5), product(t, "Cola", 1, 1)),
			})
		require.NoError(t, err)
		colaID := o.Allocations()[0].Products()[1].ID()

		removed := o.RemoveProduct("Amy", colaID)

		assert.True(t, removed)
		require.Len(t, o.Allocations(), 1)
		assert.Len(t, o.Allocations()[0].Products(), 1)
		assert.False(t, o.IsEmpty())
	})

	t.Run("removing the last product prunes the allocation and reassigns the fee", func(t *testing.T) {
		o := lunchOrder(t)
		boProductID := o.Allocations()[1].Products()[0].ID()

		removed := o.RemoveProduct("Bo", boProductID)

		assert.True(t, removed)
		require.Len(t, o.Allocations(), 1)
		assert.Equal(t, "Amy", o.Allocations()[0].Employee())
		// Amy now carries the whole delivery fee.
		assert.Equal(t, "10.00", o.Allocations()[0].DeliveryShare().String())
		assert.False(t, o.IsEmpty())
	})

	t.Run("removing the only product of the only employee empties the order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Lunch", money(t, 10), time.Now(),
			[]*order.Allocation{allocation(t, "Amy", product(t, "Pizza", 1, 5))})
		require.NoError(t, err)
		productID := o.Allocations()[0].Products()[0].ID()

		removed := o.RemoveProduct("Amy", productID)

		assert.True(t, removed)
		assert.True(t, o.IsEmpty())
	})

	t.Run("removing an absent product is a no-op", func(t *testing.T) {
		o := lunchOrder(t)

		assert.False(t, o.RemoveProduct("Amy", kernel.NewUUID()))
		assert.False(t, o.RemoveProduct("Nobody", kernel.NewUUID()))
		assert.Len(t, o.Allocations(), 2)
	})
}

func TestSplitFeeEqually(t *testing.T) {
	t.Run("shares sum back to the fee", func(t *testing.T) {
		fee := money(t, 10)

		for participants := 1; participants <= 7; participants++ {
			share := order.SplitFeeEqually(fee, participants)
			assert.True(t, share.MulInt(participants).IsEqual(fee) ||
				share.MulInt(participants).String() == fee.String(),
				"leakage for %d participants", participants)
		}
	})

	t.Run("zero participants yield zero share", func(t *testing.T) {
		assert.True(t, order.SplitFeeEqually(money(t, 10), 0).IsZero())
	})
}

package services_test

import (
	"testing"
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, value float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(value)
	require.NoError(t, err)
	return m
}

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

func buildOrder(t *testing.T, name string, fee float64, allocations ...*order.Allocation) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), name, money(t, fee), time.Now(), allocations)
	require.NoError(t, err)
	return o
}

// lunch is the canonical two-employee scenario: Amy 2x5, Bo 1x3, fee 10.
func lunch(t *testing.T) *order.Order {
	t.Helper()
	return buildOrder(t, "Lunch", 10,
		allocation(t, "Amy", product(t, "Pizza", 2, 5)),
		allocation(t, "Bo", product(t, "Salad", 1, 3)),
	)
}

func TestAggregator_Flatten(t *testing.T) {
	aggregator := services.NewAggregator()

	t.Run("emits one line item per product with fee share", func(t *testing.T) {
		items, err := aggregator.Flatten([]*order.Order{lunch(t)})

		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "Amy", items[0].EmployeeName)
		assert.Equal(t, "Pizza", items[0].FoodItem)
		assert.Equal(t, "10.00", items[0].TotalPrice.String())
		assert.Equal(t, "5.00", items[0].DeliveryFeePerEmployee.String())
		assert.Equal(t, "15.00", items[0].FinalTotal.String())

		assert.Equal(t, "Bo", items[1].EmployeeName)
		assert.Equal(t, "8.00", items[1].FinalTotal.String())
	})

	t.Run("orders then allocations then products define the ordering", func(t *testing.T) {
		first := buildOrder(t, "Breakfast", 0,
			allocation(t, "Bo", product(t, "Tea", 1, 1), product(t, "Bagel", 1, 2)),
		)
		second := lunch(t)

		items, err := aggregator.Flatten([]*order.Order{first, second})

		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, []string{"Tea", "Bagel", "Pizza", "Salad"}, []string{
			items[0].FoodItem, items[1].FoodItem, items[2].FoodItem, items[3].FoodItem,
		})
	})

	t.Run("draft allocations are excluded", func(t *testing.T) {
		o := buildOrder(t, "Lunch", 10,
			allocation(t, "Amy", product(t, "Pizza", 1, 5)),
			allocation(t, "", product(t, "Unassigned", 1, 2)),
		)

		items, err := aggregator.Flatten([]*order.Order{o})

		require.NoError(t, err)
		require.Len(t, items, 1)
		// The sole participant carries the whole fee.
		assert.Equal(t, "10.00", items[0].DeliveryFeePerEmployee.String())
	})

	t.Run("line item ids resolve back to their parts", func(t *testing.T) {
		o := lunch(t)
		items, err := aggregator.Flatten([]*order.Order{o})
		require.NoError(t, err)

		parsed, err := kernel.ParseLineItemID(items[0].ID.String())
		require.NoError(t, err)
		assert.True(t, parsed.OrderID().IsEqual(o.ID()))
		assert.Equal(t, "Amy", parsed.Employee())
	})
}

func TestAggregator_AggregateByEmployee(t *testing.T) {
	aggregator := services.NewAggregator()

	t.Run("computes the canonical lunch scenario", func(t *testing.T) {
		items, err := aggregator.Flatten([]*order.Order{lunch(t)})
		require.NoError(t, err)

		totals := aggregator.AggregateByEmployee(items)

		require.Len(t, totals, 2)
		assert.Equal(t, "10.00", totals["Amy"].FoodTotal.String())
		assert.Equal(t, "5.00", totals["Amy"].DeliveryTotal.String())
		assert.Equal(t, "15.00", totals["Amy"].GrandTotal.String())
		assert.Equal(t, "8.00", totals["Bo"].GrandTotal.String())
		assert.Equal(t, "23.00", aggregator.GrandTotal(items).String())
	})

	t.Run("delivery is counted once per order and employee, not per line", func(t *testing.T) {
		o := buildOrder(t, "Lunch", 12,
			allocation(t, "Amy",
				product(t, "Pizza", 1, 5),
				product(t, "Cola", 2, 1),
				product(t, "Fries", 1, 2),
			),
			allocation(t, "Bo", product(t, "Salad", 1, 3)),
		)

		items, err := aggregator.Flatten([]*order.Order{o})
		require.NoError(t, err)
		require.Len(t, items, 4)

		totals := aggregator.AggregateByEmployee(items)

		// Amy's three lines share a single 6.00 delivery share.
		assert.Equal(t, "6.00", totals["Amy"].DeliveryTotal.String())
		assert.Equal(t, "15.00", totals["Amy"].GrandTotal.String())
		assert.Equal(t, "9.00", totals["Bo"].GrandTotal.String())
	})

	t.Run("delivery accumulates across orders", func(t *testing.T) {
		first := buildOrder(t, "Monday", 4, allocation(t, "Amy", product(t, "Pizza", 1, 5)))
		second := buildOrder(t, "Tuesday", 6, allocation(t, "Amy", product(t, "Salad", 1, 3)))

		items, err := aggregator.Flatten([]*order.Order{first, second})
		require.NoError(t, err)

		totals := aggregator.AggregateByEmployee(items)

		assert.Equal(t, "10.00", totals["Amy"].DeliveryTotal.String())
		assert.Equal(t, "18.00", totals["Amy"].GrandTotal.String())
	})
}

func TestAggregator_GrandTotal(t *testing.T) {
	aggregator := services.NewAggregator()

	t.Run("equals food plus each fee once, whatever the shape", func(t *testing.T) {
		orders := []*order.Order{
			buildOrder(t, "Solo", 7, allocation(t, "Amy", product(t, "Pizza", 2, 5))),
			buildOrder(t, "Trio", 9,
				allocation(t, "Amy", product(t, "Cola", 1, 1)),
				allocation(t, "Bo", product(t, "Salad", 1, 3), product(t, "Tea", 1, 1)),
				allocation(t, "Cy", product(t, "Fries", 3, 2)),
			),
		}

		items, err := aggregator.Flatten(orders)
		require.NoError(t, err)

		// Food: 10 + 1 + 3 + 1 + 6 = 21; fees: 7 + 9 = 16.
		assert.Equal(t, "37.00", aggregator.GrandTotal(items).String())
	})

	t.Run("empty collection yields zero", func(t *testing.T) {
		assert.True(t, aggregator.GrandTotal(nil).IsZero())
	})

	t.Run("shares sum exactly to the fee for awkward divisors", func(t *testing.T) {
		o := buildOrder(t, "Thirds", 10,
			allocation(t, "Amy", product(t, "Pizza", 1, 5)),
			allocation(t, "Bo", product(t, "Salad", 1, 3)),
			allocation(t, "Cy", product(t, "Tea", 1, 1)),
		)

		items, err := aggregator.Flatten([]*order.Order{o})
		require.NoError(t, err)

		var deliverySum kernel.Money
		for _, total := range aggregator.AggregateByEmployee(items) {
			deliverySum = deliverySum.Add(total.DeliveryTotal)
		}
		assert.Equal(t, "10.00", deliverySum.String())
		// Food 9 + fee 10.
		assert.Equal(t, "19.00", aggregator.GrandTotal(items).String())
	})
}

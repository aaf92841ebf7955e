package services

import (
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
)

// EmployeeTotal is one employee's accumulated cost across all orders.
type EmployeeTotal struct {
	// FoodTotal is the sum of the employee's product totals.
	FoodTotal kernel.Money

	// DeliveryTotal is the sum of the employee's delivery shares, counted
	// once per order the employee participates in.
	DeliveryTotal kernel.Money

	// GrandTotal is FoodTotal plus DeliveryTotal.
	GrandTotal kernel.Money
}

// Aggregator is a domain service that flattens the nested order collection
// into line items and derives per-employee and grand totals from them.
//
// The central correctness rule: when one employee has several products in the
// same order, that order's delivery share is added to the employee's total
// exactly once, never once per line item.
type Aggregator struct{}

// NewAggregator creates a new Aggregator instance.
func NewAggregator() Aggregator {
	return Aggregator{}
}

// Flatten emits one line item per product of every named employee allocation.
// Draft allocations are skipped entirely. Ordering is deterministic: orders
// in store order, allocations in order, products in order.
func (Aggregator) Flatten(orders []*order.Order) ([]LineItem, error) {
	items := make([]LineItem, 0)

	for _, o := range orders {
		for _, allocation := range o.Allocations() {
			if allocation.IsDraft() {
				continue
			}
			for _, product := range allocation.Products() {
				id, err := kernel.NewLineItemID(o.ID(), allocation.Employee(), product.ID())
				if err != nil {
					return nil, err
				}

				items = append(items, LineItem{
					ID:                     id,
					OrderID:                o.ID(),
					OrderName:              o.Name(),
					OrderTimestamp:         o.Timestamp(),
					EmployeeName:           allocation.Employee(),
					FoodItem:               product.Name(),
					Quantity:               product.Quantity(),
					PricePerItem:           product.PricePerItem(),
					TotalPrice:             product.TotalPrice(),
					DeliveryFee:            o.DeliveryFee(),
					DeliveryFeePerEmployee: allocation.DeliveryShare(),
					FinalTotal:             product.TotalPrice().Add(allocation.DeliveryShare()),
				})
			}
		}
	}

	return items, nil
}

// AggregateByEmployee sums food and delivery costs per employee across all
// line items from all orders. Delivery shares are deduplicated per
// (order, employee) pair.
func (Aggregator) AggregateByEmployee(items []LineItem) map[string]EmployeeTotal {
	totals := make(map[string]EmployeeTotal)
	type orderEmployee struct {
		orderID  string
		employee string
	}
	counted := make(map[orderEmployee]struct{})

	for _, item := range items {
		total := totals[item.EmployeeName]
		total.FoodTotal = total.FoodTotal.Add(item.TotalPrice)

		key := orderEmployee{orderID: item.OrderID.String(), employee: item.EmployeeName}
		if _, seen := counted[key]; !seen {
			counted[key] = struct{}{}
			total.DeliveryTotal = total.DeliveryTotal.Add(item.DeliveryFeePerEmployee)
		}

		total.GrandTotal = total.FoodTotal.Add(total.DeliveryTotal)
		totals[item.EmployeeName] = total
	}

	return totals
}

// GrandTotal returns the sum of every employee's grand total: all food costs
// plus every order's delivery fee, each counted exactly once.
func (a Aggregator) GrandTotal(items []LineItem) kernel.Money {
	var grand kernel.Money
	for _, total := range a.AggregateByEmployee(items) {
		grand = grand.Add(total.GrandTotal)
	}
	return grand
}

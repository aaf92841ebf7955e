package services

import (
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
)

// EmployeeStats summarizes one employee's line items across all orders.
type EmployeeStats struct {
	// Items are the employee's line items in flatten order.
	Items []LineItem

	// TotalAmount sums the items' food totals; delivery is excluded here,
	// unlike the Aggregator's grand totals.
	TotalAmount kernel.Money

	// TotalQuantity sums the items' quantities.
	TotalQuantity int

	// OrderCount is the number of line items. Existing consumers rely on
	// this counting product lines, not distinct orders.
	OrderCount int
}

// AverageOrderValue returns TotalAmount / OrderCount, or zero when the
// employee has no line items.
func (s EmployeeStats) AverageOrderValue() kernel.Money {
	return s.TotalAmount.DivInt(s.OrderCount)
}

// AverageItemPrice returns TotalAmount / TotalQuantity, or zero when the
// quantity sum is zero.
func (s EmployeeStats) AverageItemPrice() kernel.Money {
	return s.TotalAmount.DivInt(s.TotalQuantity)
}

// Statistics is a domain service deriving per-employee summary figures from
// the flattened line items produced by the Aggregator.
type Statistics struct{}

// NewStatistics creates a new Statistics instance.
func NewStatistics() Statistics {
	return Statistics{}
}

// PerEmployeeStats groups line items by employee and accumulates amounts,
// quantities and line counts. Zero orders yield an empty mapping.
func (Statistics) PerEmployeeStats(items []LineItem) map[string]EmployeeStats {
	stats := make(map[string]EmployeeStats)

	for _, item := range items {
		s := stats[item.EmployeeName]
		s.Items = append(s.Items, item)
		s.TotalAmount = s.TotalAmount.Add(item.TotalPrice)
		s.TotalQuantity += item.Quantity
		s.OrderCount++
		stats[item.EmployeeName] = s
	}

	return stats
}

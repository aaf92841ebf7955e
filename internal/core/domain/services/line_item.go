package services

import (
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
)

// LineItem is a flattened, read-only view of one product within one
// employee's allocation within one order, enriched with that employee's share
// of the order's delivery fee. Line items are regenerated on demand from the
// canonical order collection and never mutated in place.
type LineItem struct {
	// ID addresses this line for edit and delete operations.
	ID kernel.LineItemID

	// OrderID, OrderName and OrderTimestamp identify the owning order.
	OrderID        kernel.UUID
	OrderName      string
	OrderTimestamp time.Time

	// EmployeeName is the allocation's employee.
	EmployeeName string

	// FoodItem, Quantity, PricePerItem and TotalPrice mirror the product.
	FoodItem     string
	Quantity     int
	PricePerItem kernel.Money
	TotalPrice   kernel.Money

	// DeliveryFee is the order's total delivery cost.
	DeliveryFee kernel.Money

	// DeliveryFeePerEmployee is this allocation's share of DeliveryFee.
	DeliveryFeePerEmployee kernel.Money

	// FinalTotal is TotalPrice plus DeliveryFeePerEmployee.
	FinalTotal kernel.Money
}

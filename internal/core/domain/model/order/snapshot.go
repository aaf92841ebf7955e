package order

import (
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"
)

// Snapshot is the plain serializable form of an Order, shared by blob
// persistence, backups and file import/export. Field names match the JSON
// shape the collection has always been stored under.
type Snapshot struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	DeliveryFee float64              `json:"deliveryFee"`
	Timestamp   time.Time            `json:"timestamp"`
	Employees   []AllocationSnapshot `json:"employees"`
}

// AllocationSnapshot is the serializable form of an Allocation.
type AllocationSnapshot struct {
	EmployeeID  string            `json:"employeeId"`
	DeliveryTax float64           `json:"deliveryTax"`
	Products    []ProductSnapshot `json:"products"`
}

// ProductSnapshot is the serializable form of a Product.
type ProductSnapshot struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerItem float64 `json:"pricePerItem"`
	TotalPrice   float64 `json:"totalPrice"`
}

// ToSnapshot renders the order in its serializable form.
func (o *Order) ToSnapshot() Snapshot {
	employees := make([]AllocationSnapshot, 0, len(o.allocations))
	for _, allocation := range o.allocations {
		products := make([]ProductSnapshot, 0, len(allocation.products))
		for _, product := range allocation.products {
			products = append(products, ProductSnapshot{
				ID:           product.ID().String(),
				Name:         product.Name(),
				Quantity:     product.Quantity(),
				PricePerItem: product.PricePerItem().Float64(),
				TotalPrice:   product.TotalPrice().Float64(),
			})
		}
		employees = append(employees, AllocationSnapshot{
			EmployeeID:  allocation.Employee(),
			DeliveryTax: allocation.DeliveryShare().Float64(),
			Products:    products,
		})
	}

	return Snapshot{
		ID:          o.id.String(),
		Name:        o.name,
		DeliveryFee: o.deliveryFee.Float64(),
		Timestamp:   o.timestamp,
		Employees:   employees,
	}
}

// FromSnapshot reconstructs an order from its serializable form, re-running
// all creation validation and recomputing every cached value (total prices
// and delivery shares) rather than trusting the stored ones.
//
// Identifiers that do not parse as UUIDs, as produced by the legacy export
// format, are replaced with fresh ones so historical files stay importable.
func FromSnapshot(snapshot Snapshot) (*Order, error) {
	id, err := kernel.UUIDFromString(snapshot.ID)
	if err != nil {
		id = kernel.NewUUID()
	}

	allocations := make([]*Allocation, 0, len(snapshot.Employees))
	for _, employee := range snapshot.Employees {
		products := make([]*Product, 0, len(employee.Products))
		for _, p := range employee.Products {
			productID, idErr := kernel.UUIDFromString(p.ID)
			if idErr != nil {
				productID = kernel.NewUUID()
			}

			price, priceErr := kernel.MoneyFromFloat(p.PricePerItem)
			if priceErr != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause("product price", priceErr)
			}

			product, productErr := NewProduct(productID, p.Name, p.Quantity, price)
			if productErr != nil {
				return nil, productErr
			}
			products = append(products, product)
		}

		allocation, allocErr := NewAllocation(employee.EmployeeID, products)
		if allocErr != nil {
			return nil, allocErr
		}
		allocations = append(allocations, allocation)
	}

	fee, err := kernel.MoneyFromFloat(snapshot.DeliveryFee)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("delivery fee", err)
	}

	return NewOrder(id, snapshot.Name, fee, snapshot.Timestamp, allocations)
}

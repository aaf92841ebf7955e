// Package queries contains read operations over the order collection.
// Queries never modify state; handlers read the owning store and shape the
// result with the domain services.
package queries

import (
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
)

// OrderReader is the read-only surface of the owning order store that query
// handlers work against.
type OrderReader interface {
	ListOrders() []*order.Order
	Snapshots() []order.Snapshot
}

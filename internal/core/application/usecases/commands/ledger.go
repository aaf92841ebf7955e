// Package commands contains business operations that modify the order
// collection. All commands follow a consistent pattern: a validated command
// object, and a handler that applies it through the owning store.
package commands

import (
	"context"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/application/ledger"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
)

// OrderLedger is the mutating surface of the owning order store that command
// handlers work against.
type OrderLedger interface {
	CreateOrder(ctx context.Context, name string, deliveryFee kernel.Money, allocations []*order.Allocation) (*order.Order, error)
	UpdateOrder(ctx context.Context, id kernel.UUID, patch ledger.OrderPatch) (*order.Order, error)
	DeleteOrder(ctx context.Context, id kernel.UUID) error
	UpdateLineItem(ctx context.Context, id kernel.LineItemID, patch order.ProductPatch) error
	DeleteLineItem(ctx context.Context, id kernel.LineItemID) error
	ClearAll(ctx context.Context) error
	ReplaceAll(ctx context.Context, snapshots []order.Snapshot, backupLabel string) error
	Len() int
}

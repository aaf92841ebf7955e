package commands

import (
	"context"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/application/ledger"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler merges field updates into an existing order.
// Changing the delivery fee or the allocations resplits the per-employee
// shares inside the store.
type UpdateOrderCommandHandler struct {
	orders OrderLedger
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(orders OrderLedger) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		orders: orders,
	}
}

// Handle validates the command and applies the partial update. Returns the
// updated order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.orders.UpdateOrder(ctx, cmd.OrderID(), ledger.OrderPatch{
		Name:        cmd.Name(),
		DeliveryFee: cmd.DeliveryFee(),
		Allocations: cmd.Allocations(),
	})
}

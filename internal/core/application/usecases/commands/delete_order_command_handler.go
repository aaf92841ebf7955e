package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes orders from the owning store.
type DeleteOrderCommandHandler struct {
	orders OrderLedger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(orders OrderLedger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		orders: orders,
	}
}

// Handle validates the command and deletes the order. An id that resolves to
// nothing is a successful no-op.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orders.DeleteOrder(ctx, cmd.OrderID())
}

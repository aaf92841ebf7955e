package commands

import (
	"context"
)

// ClearOrdersCommandHandler empties the order collection.
type ClearOrdersCommandHandler struct {
	orders OrderLedger
}

// NewClearOrdersCommandHandler creates a handler for clearing all orders.
func NewClearOrdersCommandHandler(orders OrderLedger) ClearOrdersCommandHandler {
	return ClearOrdersCommandHandler{
		orders: orders,
	}
}

// Handle validates the command and clears the collection.
func (h *ClearOrdersCommandHandler) Handle(ctx context.Context, cmd ClearOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orders.ClearAll(ctx)
}

package commands

import (
	"context"
)

// DeleteLineItemCommandHandler removes products through their composite ids,
// cascading to emptied allocations and orders.
type DeleteLineItemCommandHandler struct {
	orders OrderLedger
}

// NewDeleteLineItemCommandHandler creates a handler for line item deletion.
func NewDeleteLineItemCommandHandler(orders OrderLedger) DeleteLineItemCommandHandler {
	return DeleteLineItemCommandHandler{
		orders: orders,
	}
}

// Handle validates the command and deletes the addressed product. An id that
// resolves to nothing is a successful no-op.
func (h *DeleteLineItemCommandHandler) Handle(ctx context.Context, cmd DeleteLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orders.DeleteLineItem(ctx, cmd.LineItemID())
}

package commands

import (
	"context"
	"fmt"
)

// ImportOrdersCommandHandler swaps the collection for imported orders,
// backing up the current state first.
type ImportOrdersCommandHandler struct {
	orders OrderLedger
}

// NewImportOrdersCommandHandler creates a handler for order imports.
func NewImportOrdersCommandHandler(orders OrderLedger) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		orders: orders,
	}
}

// Handle validates the command and replaces the collection. Any snapshot
// failing domain validation rejects the whole import.
func (h *ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	label := fmt.Sprintf("Before_import_%d_items", h.orders.Len())
	return h.orders.ReplaceAll(ctx, cmd.Snapshots(), label)
}

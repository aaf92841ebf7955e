package commands

import (
	"context"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
)

// UpdateLineItemCommandHandler patches a single product through its
// composite id.
type UpdateLineItemCommandHandler struct {
	orders OrderLedger
}

// NewUpdateLineItemCommandHandler creates a handler for line item updates.
func NewUpdateLineItemCommandHandler(orders OrderLedger) UpdateLineItemCommandHandler {
	return UpdateLineItemCommandHandler{
		orders: orders,
	}
}

// Handle validates the command and applies the patch to the addressed
// product.
func (h *UpdateLineItemCommandHandler) Handle(ctx context.Context, cmd UpdateLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orders.UpdateLineItem(ctx, cmd.LineItemID(), order.ProductPatch{
		Name:         cmd.Name(),
		Quantity:     cmd.Quantity(),
		PricePerItem: cmd.PricePerItem(),
	})
}

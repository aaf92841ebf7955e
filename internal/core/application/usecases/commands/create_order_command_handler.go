package commands

import (
	"context"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
)

// CreateOrderCommandHandler registers new orders in the owning store, which
// assigns the id and timestamp and splits the delivery fee.
type CreateOrderCommandHandler struct {
	orders OrderLedger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(orders OrderLedger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders: orders,
	}
}

// Handle validates the command and creates the order. Returns the created
// order so callers can report its assigned id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.orders.CreateOrder(ctx, cmd.Name(), cmd.DeliveryFee(), cmd.Allocations())
}

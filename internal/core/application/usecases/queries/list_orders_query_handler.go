package queries

import (
	"context"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
)

// ListOrdersQueryHandler reads the order collection from the owning store.
type ListOrdersQueryHandler struct {
	orders OrderReader
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle returns every order as a snapshot, most recently created last.
func (h ListOrdersQueryHandler) Handle(_ context.Context, query ListOrdersQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.Snapshots(), nil
}

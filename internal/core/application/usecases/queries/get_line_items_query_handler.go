package queries

import (
	"context"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/services"
)

// GetLineItemsQueryHandler flattens the order collection with the
// aggregation service.
type GetLineItemsQueryHandler struct {
	orders     OrderReader
	aggregator services.Aggregator
}

// NewGetLineItemsQueryHandler creates a handler for the flattened view.
func NewGetLineItemsQueryHandler(orders OrderReader, aggregator services.Aggregator) GetLineItemsQueryHandler {
	return GetLineItemsQueryHandler{
		orders:     orders,
		aggregator: aggregator,
	}
}

// Handle returns one line item per product across all orders.
func (h GetLineItemsQueryHandler) Handle(_ context.Context, query GetLineItemsQuery) ([]services.LineItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.aggregator.Flatten(h.orders.ListOrders())
}

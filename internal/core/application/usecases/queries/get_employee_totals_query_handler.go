package queries

import (
	"context"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/services"
)

// GetEmployeeTotalsQueryHandler computes per-employee totals with the
// aggregation service.
type GetEmployeeTotalsQueryHandler struct {
	orders     OrderReader
	aggregator services.Aggregator
}

// NewGetEmployeeTotalsQueryHandler creates a handler for the totals view.
func NewGetEmployeeTotalsQueryHandler(orders OrderReader, aggregator services.Aggregator) GetEmployeeTotalsQueryHandler {
	return GetEmployeeTotalsQueryHandler{
		orders:     orders,
		aggregator: aggregator,
	}
}

// Handle returns the per-employee totals and the grand total across the
// whole collection.
func (h GetEmployeeTotalsQueryHandler) Handle(_ context.Context, query GetEmployeeTotalsQuery) (GetEmployeeTotalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEmployeeTotalsQueryResponse{}, err
	}

	items, err := h.aggregator.Flatten(h.orders.ListOrders())
	if err != nil {
		return GetEmployeeTotalsQueryResponse{}, err
	}

	return GetEmployeeTotalsQueryResponse{
		Totals:     h.aggregator.AggregateByEmployee(items),
		GrandTotal: h.aggregator.GrandTotal(items),
	}, nil
}

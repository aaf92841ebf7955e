package queries

import (
	"context"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/services"
)

// GetEmployeeStatsQueryHandler computes consumption statistics from the
// flattened view.
type GetEmployeeStatsQueryHandler struct {
	orders     OrderReader
	aggregator services.Aggregator
	statistics services.Statistics
}

// NewGetEmployeeStatsQueryHandler creates a handler for the statistics view.
func NewGetEmployeeStatsQueryHandler(orders OrderReader, aggregator services.Aggregator, statistics services.Statistics) GetEmployeeStatsQueryHandler {
	return GetEmployeeStatsQueryHandler{
		orders:     orders,
		aggregator: aggregator,
		statistics: statistics,
	}
}

// Handle returns statistics keyed by employee name.
func (h GetEmployeeStatsQueryHandler) Handle(_ context.Context, query GetEmployeeStatsQuery) (map[string]services.EmployeeStats, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.aggregator.Flatten(h.orders.ListOrders())
	if err != nil {
		return nil, err
	}

	return h.statistics.PerEmployeeStats(items), nil
}

package queries

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var ErrGetLineItemsQueryIsNotConstructed = errors.New(
	"GetLineItemsQuery must be created via NewGetLineItemsQuery constructor",
)

// GetLineItemsQuery retrieves the flattened per-product view of the
// collection, one row per product with its employee's delivery share
// attached. Draft allocations are excluded.
type GetLineItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLineItemsQuery creates a query to retrieve the flattened view.
func NewGetLineItemsQuery() GetLineItemsQuery {
	return GetLineItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLineItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLineItemsQueryIsNotConstructed)
}

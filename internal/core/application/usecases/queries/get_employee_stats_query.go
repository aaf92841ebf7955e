package queries

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var ErrGetEmployeeStatsQueryIsNotConstructed = errors.New(
	"GetEmployeeStatsQuery must be created via NewGetEmployeeStatsQuery constructor",
)

// GetEmployeeStatsQuery retrieves per-employee consumption statistics:
// item counts, quantities, spend and derived averages.
type GetEmployeeStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEmployeeStatsQuery creates a query for the statistics view.
func NewGetEmployeeStatsQuery() GetEmployeeStatsQuery {
	return GetEmployeeStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEmployeeStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeStatsQueryIsNotConstructed)
}

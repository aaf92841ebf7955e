package queries

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/services"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var ErrGetEmployeeTotalsQueryIsNotConstructed = errors.New(
	"GetEmployeeTotalsQuery must be created via NewGetEmployeeTotalsQuery constructor",
)

// GetEmployeeTotalsQuery retrieves what each employee owes across all
// orders, with the delivery share counted once per order per employee, plus
// the grand total across everyone.
type GetEmployeeTotalsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEmployeeTotalsQuery creates a query for the per-employee totals.
func NewGetEmployeeTotalsQuery() GetEmployeeTotalsQuery {
	return GetEmployeeTotalsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEmployeeTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeTotalsQueryIsNotConstructed)
}

// GetEmployeeTotalsQueryResponse is the per-employee totals read model.
type GetEmployeeTotalsQueryResponse struct {
	Totals     map[string]services.EmployeeTotal
	GrandTotal kernel.Money
}

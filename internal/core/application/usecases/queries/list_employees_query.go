package queries

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var ErrListEmployeesQueryIsNotConstructed = errors.New(
	"ListEmployeesQuery must be created via NewListEmployeesQuery constructor",
)

// ListEmployeesQuery retrieves the known employee names: the configured
// roster merged with every name appearing in the current collection.
type ListEmployeesQuery struct {
	guard guard.ConstructorGuard
}

// NewListEmployeesQuery creates a query for the employee name list.
func NewListEmployeesQuery() ListEmployeesQuery {
	return ListEmployeesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrListEmployeesQueryIsNotConstructed)
}

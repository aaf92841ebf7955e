package queries

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var ErrListBackupsQueryIsNotConstructed = errors.New(
	"ListBackupsQuery must be created via NewListBackupsQuery constructor",
)

// ListBackupsQuery retrieves the stored backups, oldest first.
type ListBackupsQuery struct {
	guard guard.ConstructorGuard
}

// NewListBackupsQuery creates a query for the backup list.
func NewListBackupsQuery() ListBackupsQuery {
	return ListBackupsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListBackupsQuery) Validate() error {
	return q.guard.Validate(ErrListBackupsQueryIsNotConstructed)
}

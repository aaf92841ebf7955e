package queries

import (
	"context"
	"sort"
)

// ListEmployeesQueryHandler merges the configured roster with the names used
// in the current collection, so the client can offer both for selection.
type ListEmployeesQueryHandler struct {
	orders OrderReader
	roster []string
}

// NewListEmployeesQueryHandler creates a handler for the employee list. The
// roster is the statically configured set of names.
func NewListEmployeesQueryHandler(orders OrderReader, roster []string) ListEmployeesQueryHandler {
	return ListEmployeesQueryHandler{
		orders: orders,
		roster: roster,
	}
}

// Handle returns the distinct employee names sorted alphabetically. Roster
// order is not preserved; drafts contribute nothing.
func (h ListEmployeesQueryHandler) Handle(_ context.Context, query ListEmployeesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, name := range h.roster {
		seen[name] = struct{}{}
	}
	for _, o := range h.orders.ListOrders() {
		for _, allocation := range o.Allocations() {
			if allocation.IsDraft() {
				continue
			}
			seen[allocation.Employee()] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

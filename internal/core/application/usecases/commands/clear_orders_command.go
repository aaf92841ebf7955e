package commands

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var ErrClearOrdersCommandIsNotConstructed = errors.New(
	"ClearOrdersCommand must be created via NewClearOrdersCommand constructor",
)

// ClearOrdersCommand empties the whole order collection. The store captures
// a backup of the current state before the clear.
type ClearOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewClearOrdersCommand creates a command to clear all orders.
func NewClearOrdersCommand() ClearOrdersCommand {
	return ClearOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ClearOrdersCommand) Validate() error {
	return c.guard.Validate(ErrClearOrdersCommandIsNotConstructed)
}

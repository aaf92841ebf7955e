package commands

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var ErrDeleteLineItemCommandIsNotConstructed = errors.New(
	"DeleteLineItemCommand must be created via NewDeleteLineItemCommand constructor",
)

// DeleteLineItemCommand represents a request to remove one product, with the
// full cascade: an allocation left without products disappears, and an order
// left without allocations disappears with it.
type DeleteLineItemCommand struct { //nolint:recvcheck //using for validation
	lineItemID kernel.LineItemID

	guard guard.ConstructorGuard
}

// NewDeleteLineItemCommand creates a command to delete the addressed product.
func NewDeleteLineItemCommand(lineItemID kernel.LineItemID) (DeleteLineItemCommand, error) {
	command := DeleteLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setLineItemID(lineItemID); err != nil {
		return DeleteLineItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLineItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLineItemCommandIsNotConstructed)
}

// LineItemID returns the composite id of the product to delete.
func (c DeleteLineItemCommand) LineItemID() kernel.LineItemID {
	return c.lineItemID
}

func (c *DeleteLineItemCommand) setLineItemID(id kernel.LineItemID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.lineItemID = id
	return nil
}

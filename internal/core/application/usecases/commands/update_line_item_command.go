package commands

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var (
	ErrUpdateLineItemCommandIsNotConstructed = errors.New(
		"UpdateLineItemCommand must be created via NewUpdateLineItemCommand constructor",
	)
	ErrProductNameCannotBeCleared = errors.New("product name cannot be cleared")
	ErrQuantityIsInvalid          = errors.New("quantity must be greater than 0")
)

// UpdateLineItemCommand represents a partial update of one product, addressed
// by its composite line item id. Nil fields are left unchanged; the product's
// total price is recomputed from whatever the merge produces.
type UpdateLineItemCommand struct { //nolint:recvcheck //using for validation
	lineItemID   kernel.LineItemID
	name         *string
	quantity     *int
	pricePerItem *kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateLineItemCommand creates a command to patch the addressed product.
func NewUpdateLineItemCommand(lineItemID kernel.LineItemID, name *string, quantity *int, pricePerItem *kernel.Money) (UpdateLineItemCommand, error) {
	command := UpdateLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLineItemID(lineItemID),
		command.setName(name),
		command.setQuantity(quantity),
		command.setPricePerItem(pricePerItem),
	); err != nil {
		return UpdateLineItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLineItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineItemCommandIsNotConstructed)
}

// LineItemID returns the composite id of the product to patch.
func (c UpdateLineItemCommand) LineItemID() kernel.LineItemID {
	return c.lineItemID
}

// Name returns the new product name, or nil when unchanged.
func (c UpdateLineItemCommand) Name() *string {
	return c.name
}

// Quantity returns the new quantity, or nil when unchanged.
func (c UpdateLineItemCommand) Quantity() *int {
	return c.quantity
}

// PricePerItem returns the new unit price, or nil when unchanged.
func (c UpdateLineItemCommand) PricePerItem() *kernel.Money {
	return c.pricePerItem
}

func (c *UpdateLineItemCommand) setLineItemID(id kernel.LineItemID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.lineItemID = id
	return nil
}

func (c *UpdateLineItemCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return ErrProductNameCannotBeCleared
	}

	c.name = name
	return nil
}

func (c *UpdateLineItemCommand) setQuantity(quantity *int) error {
	if quantity != nil && *quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *UpdateLineItemCommand) setPricePerItem(price *kernel.Money) error {
	c.pricePerItem = price
	return nil
}

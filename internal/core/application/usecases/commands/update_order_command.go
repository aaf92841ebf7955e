package commands

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrOrderNameCannotBeCleared = errors.New("order name cannot be cleared")
)

// UpdateOrderCommand represents a partial update of an existing order. Nil
// fields are left unchanged.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	name        *string
	deliveryFee *kernel.Money
	allocations []*order.Allocation

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to merge the given fields into the
// order with the given id. A nil allocations slice means the allocations stay
// as they are.
func NewUpdateOrderCommand(orderID kernel.UUID, name *string, deliveryFee *kernel.Money, allocations []*order.Allocation) (UpdateOrderCommand, error) {
	command := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setName(name),
		command.setDeliveryFee(deliveryFee),
		command.setAllocations(allocations),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Name returns the new order name, or nil when unchanged.
func (c UpdateOrderCommand) Name() *string {
	return c.name
}

// DeliveryFee returns the new delivery fee, or nil when unchanged.
func (c UpdateOrderCommand) DeliveryFee() *kernel.Money {
	return c.deliveryFee
}

// Allocations returns the replacement allocations, or nil when unchanged.
func (c UpdateOrderCommand) Allocations() []*order.Allocation {
	return c.allocations
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return ErrOrderNameCannotBeCleared
	}

	c.name = name
	return nil
}

func (c *UpdateOrderCommand) setDeliveryFee(fee *kernel.Money) error {
	c.deliveryFee = fee
	return nil
}

func (c *UpdateOrderCommand) setAllocations(allocations []*order.Allocation) error {
	c.allocations = allocations
	return nil
}

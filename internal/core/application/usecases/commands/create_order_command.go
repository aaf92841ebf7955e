package commands

import (
	"errors"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNameIsRequired    = errors.New("order name is required")
	ErrAllocationsAreRequired = errors.New("at least one employee allocation is required")
)

// CreateOrderCommand represents a request to register a new shared food
// order: its name, the delivery fee and the per-employee allocations.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	name        string
	deliveryFee kernel.Money
	allocations []*order.Allocation

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order. The
// delivery fee may be zero; the allocations must contain at least one entry.
func NewCreateOrderCommand(name string, deliveryFee kernel.Money, allocations []*order.Allocation) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setDeliveryFee(deliveryFee),
		command.setAllocations(allocations),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Name returns the human-readable order name.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// DeliveryFee returns the total delivery fee for the order.
func (c CreateOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// Allocations returns the per-employee product allocations.
func (c CreateOrderCommand) Allocations() []*order.Allocation {
	return c.allocations
}

func (c *CreateOrderCommand) setName(name string) error {
	if name == "" {
		return ErrOrderNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(fee kernel.Money) error {
	c.deliveryFee = fee
	return nil
}

func (c *CreateOrderCommand) setAllocations(allocations []*order.Allocation) error {
	if len(allocations) == 0 {
		return ErrAllocationsAreRequired
	}

	c.allocations = allocations
	return nil
}

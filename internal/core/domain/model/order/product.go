package order

import (
	"errors"
	"fmt"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents one food item within an employee's allocation.
//
// Product maintains these invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Quantity must be at least 1
//   - totalPrice always equals quantity times pricePerItem after any mutation
type Product struct {
	// id is the unique identifier for the product line
	id kernel.UUID

	// name is the food item's display name
	name string

	// quantity is the number of units ordered (at least 1)
	quantity int

	// pricePerItem is the unit price
	pricePerItem kernel.Money

	// totalPrice is the cached quantity * pricePerItem
	totalPrice kernel.Money

	// isConstructed ensures the product was created via NewProduct
	isConstructed bool
}

// ProductPatch carries the optional field updates for a product. Nil fields
// are left unchanged; the cached total price is recomputed after any change.
type ProductPatch struct {
	Name         *string
	Quantity     *int
	PricePerItem *kernel.Money
}

// NewProduct creates a new Product with validation. The cached total price is
// derived from quantity and unit price.
func NewProduct(id kernel.UUID, name string, quantity int, pricePerItem kernel.Money) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	product.pricePerItem = pricePerItem
	product.recomputeTotal()
	return product, nil
}

// Validate ensures the Product instance was properly constructed through
// NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the food item's display name.
func (p *Product) Name() string {
	return p.name
}

// Quantity returns the number of units ordered.
func (p *Product) Quantity() int {
	return p.quantity
}

// PricePerItem returns the unit price.
func (p *Product) PricePerItem() kernel.Money {
	return p.pricePerItem
}

// TotalPrice returns the cached quantity * pricePerItem.
func (p *Product) TotalPrice() kernel.Money {
	return p.totalPrice
}

// Apply merges the non-nil fields of the patch into the product, validating
// each one, and recomputes the cached total price. Validation failures leave
// the product unchanged.
func (p *Product) Apply(patch ProductPatch) error {
	next := *p

	var err error
	if patch.Name != nil {
		err = errors.Join(err, next.setName(*patch.Name))
	}
	if patch.Quantity != nil {
		err = errors.Join(err, next.setQuantity(*patch.Quantity))
	}
	if patch.PricePerItem != nil {
		next.pricePerItem = *patch.PricePerItem
	}
	if err != nil {
		return err
	}

	next.recomputeTotal()
	*p = next
	return nil
}

func (p *Product) recomputeTotal() {
	p.totalPrice = p.pricePerItem.MulInt(p.quantity)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	p.quantity = quantity
	return nil
}

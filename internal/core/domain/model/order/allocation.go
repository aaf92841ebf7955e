package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"
)

var (
	// ErrAllocationIsNotConstructed is returned when an Allocation instance was
	// not created through the NewAllocation factory method.
	ErrAllocationIsNotConstructed = errors.New("Allocation must be created via NewAllocation constructor")
)

// Allocation is the portion of an order belonging to one employee: the
// products they picked plus their cached share of the order's delivery fee.
//
// An allocation with an empty employee name is a draft. Drafts are kept in
// the order but never count toward fee splitting and never surface as line
// items.
type Allocation struct {
	// employee is the roster display name; empty for a draft allocation
	employee string

	// products is the ordered product sequence; insertion order is meaningful
	products []*Product

	// deliveryShare is the cached share of the owning order's delivery fee,
	// recomputed by the order whenever the fee or the participant set changes
	deliveryShare kernel.Money

	// isConstructed ensures the allocation was created via NewAllocation
	isConstructed bool
}

// NewAllocation creates an employee allocation. The employee name may be
// empty (a draft), but must not contain control characters, which are
// reserved by the line item identifier encoding.
func NewAllocation(employee string, products []*Product) (*Allocation, error) {
	if strings.ContainsFunc(employee, func(r rune) bool { return r < 0x20 }) {
		return nil, errs.NewValueIsInvalidErrorWithCause("employee name",
			fmt.Errorf("%q contains control characters", employee))
	}

	for _, product := range products {
		if err := product.Validate(); err != nil {
			return nil, err
		}
	}

	return &Allocation{
		employee:      employee,
		products:      append([]*Product(nil), products...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Allocation instance was properly constructed through
// NewAllocation.
func (a *Allocation) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAllocationIsNotConstructed
	}
	return nil
}

// Employee returns the employee display name, empty for drafts.
func (a *Allocation) Employee() string {
	return a.employee
}

// Products returns the ordered product sequence as a copy.
func (a *Allocation) Products() []*Product {
	return append([]*Product(nil), a.products...)
}

// DeliveryShare returns this allocation's cached share of the order's
// delivery fee. Drafts always carry a zero share.
func (a *Allocation) DeliveryShare() kernel.Money {
	return a.deliveryShare
}

// IsDraft reports whether no employee has been selected yet.
func (a *Allocation) IsDraft() bool {
	return a.employee == ""
}

// IsCountable reports whether this allocation makes the order valid: a named
// employee with at least one product.
func (a *Allocation) IsCountable() bool {
	return !a.IsDraft() && len(a.products) > 0
}

// findProduct returns the product with the given id, or nil.
func (a *Allocation) findProduct(id kernel.UUID) *Product {
	for _, product := range a.products {
		if product.ID().IsEqual(id) {
			return product
		}
	}
	return nil
}

// removeProduct deletes the product with the given id, preserving the order
// of the remaining products. Reports whether a product was removed.
func (a *Allocation) removeProduct(id kernel.UUID) bool {
	for i, product := range a.products {
		if product.ID().IsEqual(id) {
			a.products = append(a.products[:i], a.products[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Allocation) setDeliveryShare(share kernel.Money) {
	a.deliveryShare = share
}

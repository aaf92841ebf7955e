package order

import (
	"errors"
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoParticipants is returned when no allocation has both a
	// named employee and at least one product.
	ErrOrderHasNoParticipants = errors.New("order needs at least one employee with products")
)

// Order represents one shared food order. It is the aggregate root owning the
// employee allocations and, through them, the products.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - At least one allocation has a named employee and at least one product
//   - Employee names are unique within the order
//   - Every participating allocation carries deliveryFee divided by the
//     number of distinct participants; drafts carry a zero share
//   - An allocation emptied by a product deletion is pruned
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// name is the order's display name, e.g. the restaurant
	name string

	// deliveryFee is the order's total delivery cost
	deliveryFee kernel.Money

	// timestamp is the creation instant, assigned by the store
	timestamp time.Time

	// allocations is the ordered employee allocation sequence
	allocations []*Allocation

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation and computes the delivery
// share of every participating allocation.
//
// Returns an error when the id is invalid, the name is empty, employee names
// repeat within the order, or no allocation has both a named employee and at
// least one product.
func NewOrder(id kernel.UUID, name string, deliveryFee kernel.Money, timestamp time.Time, allocations []*Allocation) (*Order, error) {
	order := &Order{
		timestamp:     timestamp,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setName(name),
		order.setAllocations(allocations),
	); err != nil {
		return nil, err
	}

	order.deliveryFee = deliveryFee
	order.recomputeDeliveryShares()
	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Name returns the order's display name.
func (o *Order) Name() string {
	return o.name
}

// DeliveryFee returns the order's total delivery cost.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Timestamp returns the order's creation instant.
func (o *Order) Timestamp() time.Time {
	return o.timestamp
}

// Allocations returns the ordered allocation sequence as a copy.
func (o *Order) Allocations() []*Allocation {
	return append([]*Allocation(nil), o.allocations...)
}

// ParticipantCount returns the number of distinct named employees among the
// order's allocations. Drafts never increase the divisor.
func (o *Order) ParticipantCount() int {
	seen := make(map[string]struct{}, len(o.allocations))
	for _, allocation := range o.allocations {
		if allocation.IsDraft() {
			continue
		}
		seen[allocation.Employee()] = struct{}{}
	}
	return len(seen)
}

// IsEmpty reports whether the order has no allocations left and must be
// pruned by its store.
func (o *Order) IsEmpty() bool {
	return len(o.allocations) == 0
}

// Rename updates the order's display name.
func (o *Order) Rename(name string) error {
	return o.setName(name)
}

// ChangeDeliveryFee replaces the delivery fee and recomputes every
// allocation's share.
func (o *Order) ChangeDeliveryFee(fee kernel.Money) {
	o.deliveryFee = fee
	o.recomputeDeliveryShares()
}

// ReplaceAllocations swaps the entire allocation sequence, applying the same
// validation as order creation, and recomputes delivery shares.
func (o *Order) ReplaceAllocations(allocations []*Allocation) error {
	if err := o.setAllocations(allocations); err != nil {
		return err
	}
	o.recomputeDeliveryShares()
	return nil
}

// UpdateProduct merges the patch into the product addressed by employee name
// and product id, recomputing its cached total price. Fails with an object
// not found error when the allocation or the product does not resolve.
func (o *Order) UpdateProduct(employee string, productID kernel.UUID, patch ProductPatch) error {
	allocation := o.findAllocation(employee)
	if allocation == nil {
		return errs.NewObjectNotFoundError("employee allocation", employee)
	}

	product := allocation.findProduct(productID)
	if product == nil {
		return errs.NewObjectNotFoundError("product", productID.String())
	}

	return product.Apply(patch)
}

// RemoveProduct deletes the product addressed by employee name and product
// id. When the owning allocation runs out of products it is pruned as well,
// and delivery shares are recomputed for the remaining participants. The
// caller must check IsEmpty afterwards and prune the whole order if needed.
//
// Reports whether a product was actually removed; addressing an absent
// product is a no-op, not an error.
func (o *Order) RemoveProduct(employee string, productID kernel.UUID) bool {
	allocation := o.findAllocation(employee)
	if allocation == nil {
		return false
	}

	if !allocation.removeProduct(productID) {
		return false
	}

	if len(allocation.products) == 0 {
		o.removeAllocation(allocation)
	}

	o.recomputeDeliveryShares()
	return true
}

// recomputeDeliveryShares refreshes the cached per-allocation delivery share.
// Every allocation of one participant carries the same share, so the sum over
// distinct participants always equals the delivery fee exactly.
func (o *Order) recomputeDeliveryShares() {
	share := SplitFeeEqually(o.deliveryFee, o.ParticipantCount())
	for _, allocation := range o.allocations {
		if allocation.IsDraft() {
			allocation.setDeliveryShare(kernel.Money{})
			continue
		}
		allocation.setDeliveryShare(share)
	}
}

func (o *Order) findAllocation(employee string) *Allocation {
	if employee == "" {
		return nil
	}
	for _, allocation := range o.allocations {
		if allocation.Employee() == employee {
			return allocation
		}
	}
	return nil
}

func (o *Order) removeAllocation(target *Allocation) {
	for i, allocation := range o.allocations {
		if allocation == target {
			o.allocations = append(o.allocations[:i], o.allocations[i+1:]...)
			return
		}
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("order name")
	}
	o.name = name
	return nil
}

func (o *Order) setAllocations(allocations []*Allocation) error {
	countable := 0
	seen := make(map[string]struct{}, len(allocations))
	for _, allocation := range allocations {
		if err := allocation.Validate(); err != nil {
			return err
		}
		if allocation.IsCountable() {
			countable++
		}
		if allocation.IsDraft() {
			continue
		}
		if _, dup := seen[allocation.Employee()]; dup {
			return errs.NewValueIsInvalidError("employee " + allocation.Employee() + " appears twice in order")
		}
		seen[allocation.Employee()] = struct{}{}
	}

	if countable == 0 {
		return ErrOrderHasNoParticipants
	}

	o.allocations = append([]*Allocation(nil), allocations...)
	return nil
}

package kernel

import (
	"fmt"
	"strings"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"
)

// lineItemIDSeparator joins the three parts of a LineItemID in its string
// form. The ASCII unit separator cannot appear in a UUID and is rejected in
// employee names, so decomposition is never ambiguous. Employee display names
// may freely contain spaces, underscores or any other printable character.
const lineItemIDSeparator = "\x1f"

// ErrLineItemIDIsMalformed indicates that a composite identifier string could
// not be decomposed into exactly an order id, an employee name and a product
// id.
var ErrLineItemIDIsMalformed = errs.NewValueIsInvalidError("line item id must encode order, employee and product")

// ErrEmployeeNameIsRequired indicates that a LineItemID was built without an
// employee name.
var ErrEmployeeNameIsRequired = errs.NewValueIsRequiredError("employee name")

// LineItemID is a value object that addresses a single product within one
// employee's allocation within one order. It replaces delimiter-joined id
// strings with a structured triple, so composing and decomposing always round
// trips regardless of the characters in the employee's display name.
//
// Example usage:
//
//	id, err := kernel.NewLineItemID(orderID, "جودي الايوبي", productID)
//	if err != nil {
//	    // handle error
//	}
//	parsed, err := kernel.ParseLineItemID(id.String())
type LineItemID struct {
	orderID   UUID
	employee  string
	productID UUID
}

// NewLineItemID composes a line item identifier from its three parts.
// The employee name must be non-empty and free of control characters.
func NewLineItemID(orderID UUID, employee string, productID UUID) (LineItemID, error) {
	if err := orderID.Validate(); err != nil {
		return LineItemID{}, err
	}
	if err := productID.Validate(); err != nil {
		return LineItemID{}, err
	}
	if employee == "" {
		return LineItemID{}, ErrEmployeeNameIsRequired
	}
	if strings.ContainsFunc(employee, func(r rune) bool { return r < 0x20 }) {
		return LineItemID{}, errs.NewValueIsInvalidErrorWithCause("employee name",
			fmt.Errorf("%q contains control characters", employee))
	}

	return LineItemID{
		orderID:   orderID,
		employee:  employee,
		productID: productID,
	}, nil
}

// ParseLineItemID decomposes the string form produced by String. It fails
// with ErrLineItemIDIsMalformed unless the value splits into exactly three
// parts, and with an id error when the order or product part is not a UUID.
func ParseLineItemID(value string) (LineItemID, error) {
	parts := strings.Split(value, lineItemIDSeparator)
	if len(parts) != 3 {
		return LineItemID{}, ErrLineItemIDIsMalformed
	}

	orderID, err := UUIDFromString(parts[0])
	if err != nil {
		return LineItemID{}, errs.NewValueIsInvalidErrorWithCause("line item order id", err)
	}
	productID, err := UUIDFromString(parts[2])
	if err != nil {
		return LineItemID{}, errs.NewValueIsInvalidErrorWithCause("line item product id", err)
	}

	return NewLineItemID(orderID, parts[1], productID)
}

// OrderID returns the identifier of the owning order.
func (id LineItemID) OrderID() UUID {
	return id.orderID
}

// Employee returns the employee display name within the order.
func (id LineItemID) Employee() string {
	return id.employee
}

// ProductID returns the identifier of the addressed product.
func (id LineItemID) ProductID() UUID {
	return id.productID
}

// String renders the identifier as a single opaque token for transport.
// The result is only meant to be handed back to ParseLineItemID.
func (id LineItemID) String() string {
	return strings.Join([]string{id.orderID.String(), id.employee, id.productID.String()}, lineItemIDSeparator)
}

// IsEqual compares two line item identifiers part by part.
func (id LineItemID) IsEqual(other LineItemID) bool {
	return id.orderID.IsEqual(other.orderID) &&
		id.employee == other.employee &&
		id.productID.IsEqual(other.productID)
}

// Validate checks that the identifier carries all three parts.
func (id LineItemID) Validate() error {
	if id.employee == "" {
		return ErrEmployeeNameIsRequired
	}
	if err := id.orderID.Validate(); err != nil {
		return err
	}
	return id.productID.Validate()
}

package order

import (
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
)

// SplitFeeEqually divides a delivery fee equally among the given number of
// participants at full decimal precision; rounding is deferred to display.
// Zero or negative participant counts yield a zero share, so orders without
// any named employee carry no delivery cost. Pure function, no side effects.
func SplitFeeEqually(deliveryFee kernel.Money, participants int) kernel.Money {
	return deliveryFee.DivInt(participants)
}

package kernel

import (
	"fmt"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object that represents a non-negative monetary amount.
// It wraps github.com/shopspring/decimal to keep cost arithmetic exact:
// prices are entered with at most two decimal places, while delivery-fee
// shares are carried at full decimal precision and rounded only for display.
//
// The zero value of Money is a valid zero amount, which makes Money usable
// as the identity element when summing totals.
//
// Example usage:
//
//	price, err := kernel.MoneyFromFloat(5.50)
//	if err != nil {
//	    // handle error
//	}
//	total := price.MulInt(2) // 11.00
type Money struct {
	amount decimal.Decimal
}

// MoneyFromFloat creates a Money amount from a float64. Returns an error when
// the value is negative.
func MoneyFromFloat(value float64) (Money, error) {
	return newMoney(decimal.NewFromFloat(value))
}

// MoneyFromString parses a Money amount from its decimal string
// representation, e.g. "12.75". Returns an error when the string is not a
// valid decimal or the value is negative.
func MoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return newMoney(d)
}

func newMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%s is negative", d.String()))
	}
	return Money{amount: d}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// Used to derive a product's total price from quantity and unit price.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// DivInt returns the amount divided by the given positive divisor at full
// decimal precision. Division by zero or a negative divisor yields zero,
// matching the fee-splitting rule for orders without participants.
func (m Money) DivInt(divisor int) Money {
	if divisor <= 0 {
		return Money{}
	}
	return Money{amount: m.amount.Div(decimal.NewFromInt(int64(divisor)))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality, ignoring trailing zeros.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 returns the closest float64 to the amount. Used when serializing
// snapshots, whose wire format carries plain JSON numbers.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount rounded to two decimal places, the display
// precision used everywhere in the application.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount indicates a negative or unparsable monetary amount.
var ErrInvalidAmount = fmt.Errorf("amount is invalid")

// Money is a value object representing a non-negative monetary amount with
// fixed-precision decimal arithmetic. Intermediate results carry full
// precision; rounding to 2 fractional digits happens only at the boundary via
// Round2. This prevents cumulative rounding drift when summing line totals.
//
// Money is immutable. The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money from a decimal amount.
// Fails with ErrInvalidAmount when the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, amount)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString creates Money from a decimal string such as "4.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return NewMoney(d)
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Mul returns the exact product of the amount and a quantity.
// The result is not rounded; callers round once at the boundary.
func (m Money) Mul(q Quantity) Money {
	return Money{amount: m.amount.Mul(q.Value())}
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Round2 rounds to 2 fractional digits, half away from zero.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether both amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with 2 fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// SumMoney returns the exact sum of the given amounts.
func SumMoney(amounts ...Money) Money {
	total := ZeroMoney()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

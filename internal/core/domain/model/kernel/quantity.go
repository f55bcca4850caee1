package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuantity indicates a quantity at or below the permitted minimum.
var ErrInvalidQuantity = fmt.Errorf("quantity is invalid")

// Quantity is a value object representing a strictly positive decimal
// quantity. The default minimum is zero (exclusive); a higher minimum can be
// enforced with NewQuantityWithMinimum.
//
// Quantity is immutable. The zero value is invalid.
type Quantity struct {
	value decimal.Decimal
}

// NewQuantity creates a Quantity.
// Fails with ErrInvalidQuantity when the value is not greater than zero.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	return NewQuantityWithMinimum(value, decimal.Zero)
}

// NewQuantityWithMinimum creates a Quantity enforcing an exclusive minimum.
func NewQuantityWithMinimum(value, minimum decimal.Decimal) (Quantity, error) {
	if value.LessThanOrEqual(minimum) {
		return Quantity{}, fmt.Errorf("%w: %s is not greater than %s", ErrInvalidQuantity, value, minimum)
	}
	return Quantity{value: value}, nil
}

// QuantityFromInt creates a Quantity from an integer count.
func QuantityFromInt(value int64) (Quantity, error) {
	return NewQuantity(decimal.NewFromInt(value))
}

// QuantityFromString creates a Quantity from a decimal string such as "2.5".
func QuantityFromString(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
	}
	return NewQuantity(d)
}

// Value returns the underlying decimal value.
func (q Quantity) Value() decimal.Decimal {
	return q.value
}

// IsEqual reports whether both quantities are numerically equal.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value.Equal(other.value)
}

// Validate returns ErrInvalidQuantity for a zero-value Quantity.
func (q Quantity) Validate() error {
	if !q.value.IsPositive() {
		return fmt.Errorf("%w: %s is not greater than 0", ErrInvalidQuantity, q.value)
	}
	return nil
}

// String renders the quantity without trailing zeros.
func (q Quantity) String() string {
	return q.value.String()
}

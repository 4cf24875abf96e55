package money

import (
	"github.com/shopspring/decimal"

	"github.com/vitrine/catalog/pkg/currency"
)

// Money represents a monetary amount with two fractional digits of display precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// FromCents creates a Money instance from an amount in minor units
func FromCents(cents int64) Money {
	return Money{decimal.New(cents, -2)}
}

// FromMaskedInput reads the value of a masked amount field.
//
// Only digits are kept; the last two are the cents. An input with no digits
// is zero. The buffer is capped the same way currency.ParseInput caps it, so
// the stored amount always matches what the field displays.
func FromMaskedInput(raw string) Money {
	digits := currency.Digits(currency.ParseInput(raw, false, currency.US))
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return Zero()
	}
	return Money{d.Shift(-2)}
}

// MaskedBuffer returns the decimal string a masked field hands to the form:
// digits only, with a '.' before the last two when there are more than two.
func MaskedBuffer(raw string) string {
	digits := currency.Digits(raw)
	if len(digits) > 2 {
		return digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	}
	return digits
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Cents returns the amount in minor units, rounded to the nearest cent
func (m Money) Cents() int64 {
	return m.Decimal.Shift(2).Round(0).IntPart()
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsPositive checks if the amount is positive
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Sum adds up amounts
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with exactly two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount for display in the given locale
func (m Money) Format(loc currency.Locale, withSymbol bool) string {
	return currency.Format(m.String(), withSymbol, loc)
}

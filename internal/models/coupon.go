package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits kept for stored and
// returned amounts.
const MoneyPlaces = 2

// ErrDuplicateCode is returned by a coupon store when the code is already taken.
var ErrDuplicateCode = errors.New("coupon code already exists")

type Coupon struct {
	ID             int64
	Code           string
	Discount       decimal.Decimal
	MinBasketValue decimal.Decimal
}

// Normalize rounds an amount to MoneyPlaces using round-half-to-even.
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(MoneyPlaces)
}

// Normalized returns a copy of c with both amounts normalized.
func (c Coupon) Normalized() Coupon {
	c.Discount = Normalize(c.Discount)
	c.MinBasketValue = Normalize(c.MinBasketValue)
	return c
}

// Amounts must stay below maxAmount in magnitude, the NUMERIC(10,2) range of
// the coupons table, and carry at most MoneyPlaces+10 fractional digits.
var maxAmount = decimal.New(1, 8)

const (
	maxAmountExponent = 8
	minAmountExponent = -MoneyPlaces - 10
)

// AmountInRange reports whether d can be handled as a money amount. The
// exponent is checked before any comparison, since comparing rescales both
// operands to a common exponent.
func AmountInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp > maxAmountExponent || exp < minAmountExponent {
		return false
	}
	return d.Abs().LessThan(maxAmount)
}

package models

import "github.com/shopspring/decimal"

type Basket struct {
	Value                 decimal.Decimal
	AppliedDiscount       decimal.Decimal
	ApplicationSuccessful bool
}

// NewBasket builds an untouched basket for value.
func NewBasket(value decimal.Decimal) Basket {
	return Basket{Value: value, AppliedDiscount: decimal.Zero}
}

// ApplyCoupon runs the eligibility rule and returns the resulting basket.
// The input basket is never modified.
func ApplyCoupon(b Basket, c Coupon) Basket {
	if !couponApplicable(b.Value, c) {
		return Basket{Value: b.Value, AppliedDiscount: decimal.Zero}
	}
	return Basket{
		Value:                 b.Value.Sub(c.Discount),
		AppliedDiscount:       c.Discount,
		ApplicationSuccessful: true,
	}
}

func couponApplicable(value decimal.Decimal, c Coupon) bool {
	return value.IsPositive() &&
		value.GreaterThanOrEqual(c.MinBasketValue) &&
		value.GreaterThanOrEqual(c.Discount)
}

// Normalized returns a copy of b with its amounts normalized for output.
func (b Basket) Normalized() Basket {
	b.Value = Normalize(b.Value)
	b.AppliedDiscount = Normalize(b.AppliedDiscount)
	return b
}

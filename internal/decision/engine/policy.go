package engine

import "github.com/shopspring/decimal"

// RoundingMode selects how monetary fields are rounded to currency
// precision. Rounding happens once per computed field, never cumulatively.
type RoundingMode string

const (
	RoundHalfUp   RoundingMode = "half_up"
	RoundHalfEven RoundingMode = "half_even"
)

// PricingPolicy carries the commercial constants of the rulebook. Defaults
// match the store's published terms.
type PricingPolicy struct {
	BundleDiscountRate     decimal.Decimal // off each unit beyond the first in a line
	OrderDiscountRate      decimal.Decimal // order-level discount above the threshold
	OrderDiscountThreshold decimal.Decimal // strictly-greater-than subtotal trigger
	FreeShippingThreshold  decimal.Decimal // pre-discount subtotal for free shipping
	SmallOrderFlatRate     decimal.Decimal
	LargeOrderFlatRate     decimal.Decimal
	SmallOrderMaxUnits     int
	Rounding               RoundingMode
}

func DefaultPolicy() PricingPolicy {
	return PricingPolicy{
		BundleDiscountRate:     decimal.NewFromFloat(0.10),
		OrderDiscountRate:      decimal.NewFromFloat(0.15),
		OrderDiscountThreshold: decimal.NewFromInt(300),
		FreeShippingThreshold:  decimal.NewFromInt(75),
		SmallOrderFlatRate:     decimal.NewFromFloat(14.95),
		LargeOrderFlatRate:     decimal.NewFromFloat(19.95),
		SmallOrderMaxUnits:     2,
		Rounding:               RoundHalfUp,
	}
}

const currencyPlaces = 2

func (p PricingPolicy) round(amount decimal.Decimal) decimal.Decimal {
	if p.Rounding == RoundHalfEven {
		return amount.RoundBank(currencyPlaces)
	}
	// decimal.Round is half away from zero, which is half-up for the
	// non-negative amounts this engine produces.
	return amount.Round(currencyPlaces)
}

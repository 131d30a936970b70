package engine

import "github.com/shopspring/decimal"

// PricedLine is a resolved line with its bundle discount applied.
type PricedLine struct {
	ResolvedLine
	BundleDiscountRate decimal.Decimal
	LineTotal          decimal.Decimal
}

// Pricing is the full monetary outcome for an order.
type Pricing struct {
	Lines                  []PricedLine
	Subtotal               decimal.Decimal
	AdditionalDiscountRate decimal.Decimal
	ShippingCost           decimal.Decimal
	Total                  decimal.Decimal
}

// Price computes the bundle discounts, subtotal, order-level discount,
// shipping and grand total for the resolved lines, in input order.
//
// The bundle discount is strictly per-line: two lines naming the same
// product each price their own first unit at full rate.
func (p PricingPolicy) Price(resolved []ResolvedLine) Pricing {
	one := decimal.NewFromInt(1)
	discountedUnitFactor := one.Sub(p.BundleDiscountRate)

	lines := make([]PricedLine, 0, len(resolved))
	subtotal := decimal.Zero
	totalUnits := 0

	for _, line := range resolved {
		quantity := line.Line.RequestedQuantity
		totalUnits += quantity

		unit := line.Product.UnitPrice
		bundleRate := decimal.Zero
		lineTotal := unit

		if quantity > 1 {
			bundleRate = p.BundleDiscountRate
			extra := unit.Mul(discountedUnitFactor).Mul(decimal.NewFromInt(int64(quantity - 1)))
			lineTotal = unit.Add(extra)
		}
		lineTotal = p.round(lineTotal)

		lines = append(lines, PricedLine{
			ResolvedLine:       line,
			BundleDiscountRate: bundleRate,
			LineTotal:          lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	additionalRate := decimal.Zero
	if subtotal.GreaterThan(p.OrderDiscountThreshold) {
		additionalRate = p.OrderDiscountRate
	}

	// Free shipping is earned on the pre-discount subtotal.
	shipping := decimal.Zero
	if subtotal.LessThan(p.FreeShippingThreshold) {
		if totalUnits <= p.SmallOrderMaxUnits {
			shipping = p.SmallOrderFlatRate
		} else {
			shipping = p.LargeOrderFlatRate
		}
	}

	discounted := subtotal.Mul(one.Sub(additionalRate))
	total := p.round(discounted.Add(shipping))

	return Pricing{
		Lines:                  lines,
		Subtotal:               subtotal,
		AdditionalDiscountRate: additionalRate,
		ShippingCost:           shipping,
		Total:                  total,
	}
}

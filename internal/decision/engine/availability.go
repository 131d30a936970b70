package engine

import "petstore/internal/domain"

type FailureReason string

const (
	ReasonUnknownProduct    FailureReason = "UNKNOWN_PRODUCT"
	ReasonInsufficientStock FailureReason = "INSUFFICIENT_STOCK"
)

// ResolvedLine pairs a requested line with its matched catalog record.
type ResolvedLine struct {
	Line    domain.OrderLineRequest
	Product domain.ProductRecord
}

// UnfulfillableLine records why a requested line cannot be served. Product
// is nil when the catalog does not know the id.
type UnfulfillableLine struct {
	Line    domain.OrderLineRequest
	Product *domain.ProductRecord
	Reason  FailureReason
}

// ResolveAvailability matches every requested line against the catalog
// snapshot, preserving input order. Partial fulfillment is not supported:
// any unfulfillable line rejects the whole order, so callers must check the
// failure slice before using the resolved lines.
func ResolveAvailability(lines []domain.OrderLineRequest, catalog domain.CatalogSnapshot) ([]ResolvedLine, []UnfulfillableLine) {
	resolved := make([]ResolvedLine, 0, len(lines))
	var failures []UnfulfillableLine

	for _, line := range lines {
		product, ok := catalog[line.ProductID]
		if !ok {
			failures = append(failures, UnfulfillableLine{
				Line:   line,
				Reason: ReasonUnknownProduct,
			})
			continue
		}

		if line.RequestedQuantity > product.AvailableQuantity {
			p := product
			failures = append(failures, UnfulfillableLine{
				Line:    line,
				Product: &p,
				Reason:  ReasonInsufficientStock,
			})
			continue
		}

		resolved = append(resolved, ResolvedLine{Line: line, Product: product})
	}

	return resolved, failures
}

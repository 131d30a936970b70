package engine

// NeedsReplenishment reports whether fulfilling the line would leave the
// product's inventory at or below its reorder level.
//
// Each line projects against the quantity snapshotted at lookup time. Lines
// naming the same product do not chain their subtractions; intra-order
// reservation chaining is a known limitation of the current rulebook.
func NeedsReplenishment(line ResolvedLine) bool {
	projectedRemaining := line.Product.AvailableQuantity - line.Line.RequestedQuantity
	return projectedRemaining <= line.Product.ReorderLevel
}

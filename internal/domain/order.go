package domain

// OrderLineRequest is a single requested product/quantity pair. Duplicate
// product ids across lines are kept as independent lines, never merged.
type OrderLineRequest struct {
	ProductID         string
	RequestedQuantity int
}

// OrderRequest is the structured order the NLU collaborator extracted from
// staff input. CustomerID and Email are both optional; an anonymous request
// is classified as Guest. PetAdviceCandidate is free text supplied by the
// retrieval collaborator, gated (never generated) by the engine.
type OrderRequest struct {
	CustomerID         string
	Email              string
	PetAdviceCandidate string
	Lines              []OrderLineRequest
}

// TotalRequestedUnits sums the requested quantities across all lines.
func (r OrderRequest) TotalRequestedUnits() int {
	total := 0
	for _, line := range r.Lines {
		total += line.RequestedQuantity
	}
	return total
}

// DistinctProductIDs returns the product ids referenced by the request,
// first-occurrence order, without duplicates.
func (r OrderRequest) DistinctProductIDs() []string {
	seen := make(map[string]struct{}, len(r.Lines))
	ids := make([]string, 0, len(r.Lines))
	for _, line := range r.Lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}

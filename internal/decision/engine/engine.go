package engine

import (
	"github.com/shopspring/decimal"

	"petstore/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Engine is the deterministic order decision engine: a pure function of the
// already-fetched inputs. It performs no lookups, holds no state across
// invocations, and always returns a well-formed decision.
type Engine struct {
	policy PricingPolicy
}

func New(policy PricingPolicy) *Engine {
	return &Engine{policy: policy}
}

// Decide computes the order decision for a validated request against the
// catalog snapshot and the optional customer record. adviceCandidate is the
// collaborator-supplied pet-care text; the engine only gates its inclusion.
func (e *Engine) Decide(
	req domain.OrderRequest,
	catalog domain.CatalogSnapshot,
	record *domain.CustomerRecord,
	adviceCandidate string,
) domain.OrderDecision {
	customerType, adviceEligible := ClassifyCustomer(record)

	// An Accept decision always carries at least one item; a request that
	// would break that invariant never reaches the pricing stages.
	if len(req.Lines) == 0 {
		return ErrorDecision(customerType)
	}

	resolved, failures := ResolveAvailability(req.Lines, catalog)
	if len(failures) > 0 {
		return RejectDecision(customerType, failures)
	}

	pricing := e.policy.Price(resolved)

	return e.acceptDecision(customerType, record, pricing, adviceCandidate, adviceEligible)
}

package domain

import "github.com/shopspring/decimal"

type DecisionStatus string

const (
	DecisionAccept DecisionStatus = "Accept"
	DecisionReject DecisionStatus = "Reject"
	DecisionError  DecisionStatus = "Error"
)

type CustomerType string

const (
	CustomerGuest      CustomerType = "Guest"
	CustomerSubscribed CustomerType = "Subscribed"
)

// OrderLineResult is the priced outcome for one fulfillable line. Derived
// once, never mutated afterwards.
type OrderLineResult struct {
	ProductID          string
	UnitPrice          decimal.Decimal
	Quantity           int
	BundleDiscountRate decimal.Decimal
	LineTotal          decimal.Decimal
	ReplenishFlag      bool
}

// OrderDecision is the sole output artifact of a decision computation.
// Items is populated only when Status is DecisionAccept, and is then
// guaranteed non-empty.
type OrderDecision struct {
	Status                 DecisionStatus
	Message                string
	CustomerType           CustomerType
	Items                  []OrderLineResult
	ShippingCost           decimal.Decimal
	PetAdvice              string
	Subtotal               decimal.Decimal
	AdditionalDiscountRate decimal.Decimal
	Total                  decimal.Decimal
}

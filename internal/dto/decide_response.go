package dto

import "petstore/internal/domain"

// OrderDecisionResponse is the durable wire contract for a decision. Items
// appears only on Accept, and the pricing fields are populated only when
// items are.
type OrderDecisionResponse struct {
	Status                 string               `json:"status"`
	Message                string               `json:"message"`
	CustomerType           string               `json:"customerType"`
	Items                  []OrderLineResultDTO `json:"items,omitempty"`
	ShippingCost           *float64             `json:"shippingCost,omitempty"`
	PetAdvice              string               `json:"petAdvice"`
	Subtotal               *float64             `json:"subtotal,omitempty"`
	AdditionalDiscountRate *float64             `json:"additionalDiscountRate,omitempty"`
	Total                  *float64             `json:"total,omitempty"`
}

type OrderLineResultDTO struct {
	ProductID          string  `json:"productId"`
	UnitPrice          float64 `json:"unitPrice"`
	Quantity           int     `json:"quantity"`
	BundleDiscountRate float64 `json:"bundleDiscountRate"`
	LineTotal          float64 `json:"lineTotal"`
	ReplenishFlag      bool    `json:"replenishFlag"`
}

// FromDecision maps the domain decision onto the wire shape. Monetary
// amounts convert to JSON numbers only here, after all arithmetic and final
// rounding happened on decimals.
func FromDecision(d domain.OrderDecision) OrderDecisionResponse {
	resp := OrderDecisionResponse{
		Status:       string(d.Status),
		Message:      d.Message,
		CustomerType: string(d.CustomerType),
		PetAdvice:    d.PetAdvice,
	}

	if d.Status != domain.DecisionAccept {
		return resp
	}

	items := make([]OrderLineResultDTO, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, OrderLineResultDTO{
			ProductID:          item.ProductID,
			UnitPrice:          item.UnitPrice.InexactFloat64(),
			Quantity:           item.Quantity,
			BundleDiscountRate: item.BundleDiscountRate.InexactFloat64(),
			LineTotal:          item.LineTotal.InexactFloat64(),
			ReplenishFlag:      item.ReplenishFlag,
		})
	}
	resp.Items = items

	shipping := d.ShippingCost.InexactFloat64()
	subtotal := d.Subtotal.InexactFloat64()
	discountRate := d.AdditionalDiscountRate.InexactFloat64()
	total := d.Total.InexactFloat64()
	resp.ShippingCost = &shipping
	resp.Subtotal = &subtotal
	resp.AdditionalDiscountRate = &discountRate
	resp.Total = &total

	return resp
}

package engine

import (
	"fmt"

	"petstore/internal/domain"
)

const (
	maxMessageLength   = 250
	maxPetAdviceLength = 500
)

// errorMessage is the fixed customer-safe template for internal failures.
// Diagnostic detail belongs in the logs, never in this field.
const errorMessage = "We are sorry for the technical difficulties we are currently facing. " +
	"We will get back to you with an update once the issue is resolved."

// ErrorDecision builds the terminal Error outcome. No items or pricing
// fields are populated.
func ErrorDecision(customerType domain.CustomerType) domain.OrderDecision {
	return domain.OrderDecision{
		Status:       domain.DecisionError,
		Message:      errorMessage,
		CustomerType: customerType,
	}
}

// RejectDecision builds the terminal Reject outcome for an order with one or
// more unfulfillable lines. The message names the first unavailable product
// by its public name only; internal ids never appear.
func RejectDecision(customerType domain.CustomerType, failures []UnfulfillableLine) domain.OrderDecision {
	message := "We are sorry, one of the requested items is not available in our store at the moment. " +
		"We are unable to fulfill your order right now."

	if len(failures) > 0 {
		first := failures[0]
		if first.Reason == ReasonInsufficientStock && first.Product != nil && first.Product.Name != "" {
			message = fmt.Sprintf(
				"We are sorry, %s is not available in the quantity you requested. "+
					"We are unable to fulfill your order right now, please check back with us soon.",
				first.Product.Name,
			)
		}
	}

	return domain.OrderDecision{
		Status:       domain.DecisionReject,
		Message:      clamp(message, maxMessageLength),
		CustomerType: customerType,
	}
}

// acceptDecision assembles the terminal Accept outcome from the priced lines.
func (e *Engine) acceptDecision(
	customerType domain.CustomerType,
	record *domain.CustomerRecord,
	pricing Pricing,
	adviceCandidate string,
	adviceEligible bool,
) domain.OrderDecision {
	items := make([]domain.OrderLineResult, 0, len(pricing.Lines))
	for _, line := range pricing.Lines {
		items = append(items, domain.OrderLineResult{
			ProductID:          line.Product.ProductID,
			UnitPrice:          line.Product.UnitPrice,
			Quantity:           line.Line.RequestedQuantity,
			BundleDiscountRate: line.BundleDiscountRate,
			LineTotal:          line.LineTotal,
			ReplenishFlag:      NeedsReplenishment(line.ResolvedLine),
		})
	}

	petAdvice := ""
	if adviceEligible {
		petAdvice = clamp(adviceCandidate, maxPetAdviceLength)
	}

	return domain.OrderDecision{
		Status:                 domain.DecisionAccept,
		Message:                clamp(acceptMessage(record, pricing), maxMessageLength),
		CustomerType:           customerType,
		Items:                  items,
		ShippingCost:           pricing.ShippingCost,
		PetAdvice:              petAdvice,
		Subtotal:               pricing.Subtotal,
		AdditionalDiscountRate: pricing.AdditionalDiscountRate,
		Total:                  pricing.Total,
	}
}

// acceptMessage renders the warm order summary. It addresses the customer by
// first name when one is known and never mentions internal product ids.
func acceptMessage(record *domain.CustomerRecord, pricing Pricing) string {
	greeting := "Dear Customer!"
	if record != nil {
		if first := record.FirstName(); first != "" {
			greeting = fmt.Sprintf("Hi %s,", first)
		}
	}

	message := fmt.Sprintf("%s thank you for your order!", greeting)

	if pricing.AdditionalDiscountRate.IsPositive() {
		percent := pricing.AdditionalDiscountRate.Mul(hundred).StringFixed(0)
		message += fmt.Sprintf(" Your order qualifies for our %s%% large-order discount.", percent)
	}

	if pricing.ShippingCost.IsZero() {
		message += fmt.Sprintf(" Your total comes to $%s with free shipping.", pricing.Total.StringFixed(2))
	} else {
		message += fmt.Sprintf(" Your total comes to $%s including $%s shipping.",
			pricing.Total.StringFixed(2), pricing.ShippingCost.StringFixed(2))
	}

	return message
}

func clamp(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

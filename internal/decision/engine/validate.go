package engine

import (
	"fmt"

	"petstore/internal/domain"
	apperrors "petstore/internal/errors"
)

// ValidateRequest checks the structural shape of an order request. It runs
// before any collaborator lookup; failures surface to the customer as a
// generic Error decision, never as validation detail.
func ValidateRequest(req domain.OrderRequest) error {
	var details []apperrors.ValidationDetail

	if len(req.Lines) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	for i, line := range req.Lines {
		if line.ProductID == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].productId", i),
				Message: "productId is required",
			})
		}
		if line.RequestedQuantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].requestedQuantity", i),
				Message: "requestedQuantity must be at least 1",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid order request", details...)
	}

	return nil
}

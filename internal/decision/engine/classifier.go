package engine

import "petstore/internal/domain"

// ClassifyCustomer derives the customer type and advice eligibility. Only a
// present record with an active subscription is Subscribed; no identifier,
// a directory miss, or an expired/none status all classify as Guest.
func ClassifyCustomer(record *domain.CustomerRecord) (domain.CustomerType, bool) {
	if record != nil && record.HasActiveSubscription() {
		return domain.CustomerSubscribed, true
	}
	return domain.CustomerGuest, false
}

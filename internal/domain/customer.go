package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	SubscriptionActive  = "active"
	SubscriptionExpired = "expired"
	SubscriptionNone    = "none"
)

type CustomerRecord struct {
	CustomerID          string
	DisplayName         string
	Email               string
	SubscriptionStatus  string
	SubscriptionEndDate time.Time
	Transactions        []Transaction
}

type Transaction struct {
	ID          string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

func (c CustomerRecord) HasActiveSubscription() bool {
	return c.SubscriptionStatus == SubscriptionActive
}

// FirstName returns the leading word of the display name, for addressing the
// customer without exposing the id or email.
func (c CustomerRecord) FirstName() string {
	name := strings.TrimSpace(c.DisplayName)
	if name == "" {
		return ""
	}
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		return name[:idx]
	}
	return name
}

package repository

import (
	"context"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"petstore/internal/domain"
	apperrors "petstore/internal/errors"
	"petstore/internal/infrastructure/httpclient"
)

// HTTPCustomerRepository talks to the customer/subscription directory
// service. GET /customers/{id} and GET /customers?email=... both return the
// record shape below; a 404 is the explicit not-found signal.
type HTTPCustomerRepository struct {
	client *httpclient.Client
}

func NewHTTPCustomerRepository(client *httpclient.Client) *HTTPCustomerRepository {
	return &HTTPCustomerRepository{client: client}
}

type customerPayload struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Email               string               `json:"email"`
	SubscriptionStatus  string               `json:"subscriptionStatus"`
	SubscriptionEndDate time.Time            `json:"subscriptionEndDate"`
	Transactions        []transactionPayload `json:"transactions"`
}

type transactionPayload struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

func (r *HTTPCustomerRepository) FindByID(ctx context.Context, customerID string) (*domain.CustomerRecord, error) {
	var payload customerPayload
	if err := r.client.GetJSON(ctx, "/customers/"+url.PathEscape(customerID), nil, &payload); err != nil {
		return nil, err
	}
	return toRecord(payload)
}

func (r *HTTPCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.CustomerRecord, error) {
	query := url.Values{}
	query.Set("email", email)

	var payload customerPayload
	if err := r.client.GetJSON(ctx, "/customers", query, &payload); err != nil {
		return nil, err
	}
	return toRecord(payload)
}

func toRecord(p customerPayload) (*domain.CustomerRecord, error) {
	if p.ID == "" {
		return nil, apperrors.NewMalformedResponseError("customer record missing id", nil)
	}

	status := p.SubscriptionStatus
	if status == "" {
		status = domain.SubscriptionNone
	}

	transactions := make([]domain.Transaction, 0, len(p.Transactions))
	for _, t := range p.Transactions {
		transactions = append(transactions, domain.Transaction{
			ID:          t.ID,
			Amount:      t.Amount,
			Date:        t.Date,
			Description: t.Description,
		})
	}

	return &domain.CustomerRecord{
		CustomerID:          p.ID,
		DisplayName:         p.Name,
		Email:               p.Email,
		SubscriptionStatus:  status,
		SubscriptionEndDate: p.SubscriptionEndDate,
		Transactions:        transactions,
	}, nil
}

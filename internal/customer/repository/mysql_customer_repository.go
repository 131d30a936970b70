package repository

import (
	"context"
	"database/sql"
	"fmt"

	"petstore/internal/domain"
	apperrors "petstore/internal/errors"
)

// MySQLCustomerRepository reads the customer replica table. The replica does
// not carry transaction history; the decision never consumes it.
type MySQLCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

const customerQuery = `
	SELECT id, name, email, subscription_status, subscription_end_date
	FROM customers
	WHERE %s = ?
`

func (r *MySQLCustomerRepository) FindByID(ctx context.Context, customerID string) (*domain.CustomerRecord, error) {
	return r.findBy(ctx, "id", customerID)
}

func (r *MySQLCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.CustomerRecord, error) {
	return r.findBy(ctx, "email", email)
}

func (r *MySQLCustomerRepository) findBy(ctx context.Context, column, value string) (*domain.CustomerRecord, error) {
	query := fmt.Sprintf(customerQuery, column)

	var rec domain.CustomerRecord
	var endDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&rec.CustomerID, &rec.DisplayName, &rec.Email,
		&rec.SubscriptionStatus, &endDate,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer with %s %q not found", column, value))
	}
	if err != nil {
		return nil, apperrors.NewTransportError("querying customer", err)
	}

	if endDate.Valid {
		rec.SubscriptionEndDate = endDate.Time
	}
	if rec.SubscriptionStatus == "" {
		rec.SubscriptionStatus = domain.SubscriptionNone
	}

	return &rec, nil
}

package customer

import (
	"context"

	"petstore/internal/domain"
)

// Lookup resolves the optional customer identity attached to a request.
// A nil record with a nil error means the caller is a guest: either no
// identifier was supplied or the directory has no matching customer.
type Lookup interface {
	Resolve(ctx context.Context, customerID, email string) (*domain.CustomerRecord, error)
}

type Repository interface {
	FindByID(ctx context.Context, customerID string) (*domain.CustomerRecord, error)
	FindByEmail(ctx context.Context, email string) (*domain.CustomerRecord, error)
}

package catalog

import (
	"context"

	"petstore/internal/domain"
)

// Lookup fetches the product records a decision needs, keyed by product id.
// Ids missing from the snapshot are unknown to the catalog; that is not an
// error at this boundary.
type Lookup interface {
	Snapshot(ctx context.Context, productIDs []string) (domain.CatalogSnapshot, error)
}

// Repository retrieves raw product/inventory records from the directory
// service (or its local replica).
type Repository interface {
	FindByIDs(ctx context.Context, productIDs []string) ([]domain.ProductRecord, error)
}

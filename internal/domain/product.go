package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

// ProductRecord is the per-request snapshot of a catalog entry. It is fetched
// fresh for every decision and never mutated while the decision is computed.
type ProductRecord struct {
	ProductID         string
	Name              string
	UnitPrice         decimal.Decimal
	AvailableQuantity int
	ReorderLevel      int
	StockStatus       string
	LastUpdated       time.Time
}

// CatalogSnapshot indexes the records fetched for one decision by product id.
// A missing key means the catalog does not know the product.
type CatalogSnapshot map[string]ProductRecord

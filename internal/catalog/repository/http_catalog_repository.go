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

// HTTPCatalogRepository talks to the catalog/inventory directory service.
// GET /products?productId=...&productId=... returns the matching records;
// ids the service does not know are simply absent from the result set.
type HTTPCatalogRepository struct {
	client *httpclient.Client
}

func NewHTTPCatalogRepository(client *httpclient.Client) *HTTPCatalogRepository {
	return &HTTPCatalogRepository{client: client}
}

type productPayload struct {
	ProductID         string          `json:"productId"`
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	AvailableQuantity int             `json:"availableQuantity"`
	ReorderLevel      int             `json:"reorderLevel"`
	Status            string          `json:"status"`
	LastUpdated       time.Time       `json:"lastUpdated"`
}

type productListPayload struct {
	Products []productPayload `json:"products"`
}

func (r *HTTPCatalogRepository) FindByIDs(ctx context.Context, productIDs []string) ([]domain.ProductRecord, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	query := url.Values{}
	for _, id := range productIDs {
		query.Add("productId", id)
	}

	var payload productListPayload
	if err := r.client.GetJSON(ctx, "/products", query, &payload); err != nil {
		// The collection endpoint reports unknown ids by omission; a 404
		// here means the route itself is broken.
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewTransportError("catalog service route not found", err)
		}
		return nil, err
	}

	records := make([]domain.ProductRecord, 0, len(payload.Products))
	for _, p := range payload.Products {
		if p.ProductID == "" {
			return nil, apperrors.NewMalformedResponseError("catalog record missing productId", nil)
		}
		if p.UnitPrice.IsNegative() {
			return nil, apperrors.NewMalformedResponseError("catalog record has negative unitPrice", nil)
		}
		if p.AvailableQuantity < 0 || p.ReorderLevel < 0 {
			return nil, apperrors.NewMalformedResponseError("catalog record has negative quantities", nil)
		}
		records = append(records, domain.ProductRecord{
			ProductID:         p.ProductID,
			Name:              p.Name,
			UnitPrice:         p.UnitPrice,
			AvailableQuantity: p.AvailableQuantity,
			ReorderLevel:      p.ReorderLevel,
			StockStatus:       p.Status,
			LastUpdated:       p.LastUpdated,
		})
	}

	return records, nil
}

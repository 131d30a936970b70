package repository

import (
	"context"
	"database/sql"
	"strings"

	"petstore/internal/domain"
	apperrors "petstore/internal/errors"
)

// MySQLCatalogRepository reads the product/inventory replica table. Driver
// errors surface as transport failures: the decision layer treats a replica
// that cannot answer the same as a directory service that cannot answer.
type MySQLCatalogRepository struct {
	db *sql.DB
}

func NewMySQLCatalogRepository(db *sql.DB) *MySQLCatalogRepository {
	return &MySQLCatalogRepository{db: db}
}

func (r *MySQLCatalogRepository) FindByIDs(ctx context.Context, productIDs []string) ([]domain.ProductRecord, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(productIDs))
	args := make([]any, len(productIDs))
	for i, id := range productIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := `
		SELECT product_id, name, unit_price, available_quantity, reorder_level, status, last_updated
		FROM product_inventory
		WHERE product_id IN (` + strings.Join(placeholders, ",") + `)
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewTransportError("querying product inventory", err)
	}
	defer rows.Close()

	var records []domain.ProductRecord
	for rows.Next() {
		var rec domain.ProductRecord
		var lastUpdated sql.NullTime
		err := rows.Scan(
			&rec.ProductID, &rec.Name, &rec.UnitPrice,
			&rec.AvailableQuantity, &rec.ReorderLevel, &rec.StockStatus,
			&lastUpdated,
		)
		if err != nil {
			return nil, apperrors.NewMalformedResponseError("scanning product inventory row", err)
		}
		if lastUpdated.Valid {
			rec.LastUpdated = lastUpdated.Time
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransportError("iterating product inventory rows", err)
	}

	return records, nil
}

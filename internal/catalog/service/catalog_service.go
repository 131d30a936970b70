package service

import (
	"context"

	"petstore/internal/domain"
)

type Repository interface {
	FindByIDs(ctx context.Context, productIDs []string) ([]domain.ProductRecord, error)
}

// CatalogService builds the per-decision catalog snapshot. It deduplicates
// the requested ids before fetching; resolving which requested lines matched
// is the availability resolver's concern, not this adapter's.
type CatalogService struct {
	repo Repository
}

func NewService(repo Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Snapshot(ctx context.Context, productIDs []string) (domain.CatalogSnapshot, error) {
	distinct := make([]string, 0, len(productIDs))
	seen := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	records, err := s.repo.FindByIDs(ctx, distinct)
	if err != nil {
		return nil, err
	}

	snapshot := make(domain.CatalogSnapshot, len(records))
	for _, rec := range records {
		snapshot[rec.ProductID] = rec
	}

	return snapshot, nil
}

package service

import (
	"context"

	"petstore/internal/domain"
	apperrors "petstore/internal/errors"
)

type Repository interface {
	FindByID(ctx context.Context, customerID string) (*domain.CustomerRecord, error)
	FindByEmail(ctx context.Context, email string) (*domain.CustomerRecord, error)
}

// CustomerService resolves the optional caller identity. A directory miss is
// an anonymous caller, not a failure; only transport-level problems propagate.
type CustomerService struct {
	repo Repository
}

func NewService(repo Repository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Resolve(ctx context.Context, customerID, email string) (*domain.CustomerRecord, error) {
	var rec *domain.CustomerRecord
	var err error

	switch {
	case customerID != "":
		rec, err = s.repo.FindByID(ctx, customerID)
	case email != "":
		rec, err = s.repo.FindByEmail(ctx, email)
	default:
		return nil, nil
	}

	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, nil
		}
		return nil, err
	}

	return rec, nil
}

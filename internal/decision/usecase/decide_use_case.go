package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"petstore/internal/decision/engine"
	"petstore/internal/domain"
	apperrors "petstore/internal/errors"
)

type CatalogLookup interface {
	Snapshot(ctx context.Context, productIDs []string) (domain.CatalogSnapshot, error)
}

type CustomerLookup interface {
	Resolve(ctx context.Context, customerID, email string) (*domain.CustomerRecord, error)
}

// DecideUseCase orchestrates one decision computation: validate the request
// shape, fan out the two collaborator lookups, join, and hand the fetched
// inputs to the pure engine. Every code path yields a well-formed decision;
// no error ever escapes to the caller.
type DecideUseCase struct {
	catalog  CatalogLookup
	customer CustomerLookup
	engine   *engine.Engine
	logger   *zap.Logger
}

func NewDecideUseCase(
	catalog CatalogLookup,
	customer CustomerLookup,
	eng *engine.Engine,
	logger *zap.Logger,
) *DecideUseCase {
	return &DecideUseCase{
		catalog:  catalog,
		customer: customer,
		engine:   eng,
		logger:   logger,
	}
}

func (uc *DecideUseCase) Decide(ctx context.Context, req domain.OrderRequest) domain.OrderDecision {
	uc.logger.Info("decision started",
		zap.Int("lineCount", len(req.Lines)),
		zap.Int("requestedUnits", req.TotalRequestedUnits()),
		zap.Bool("hasCustomerId", req.CustomerID != ""),
		zap.Bool("hasEmail", req.Email != ""),
	)

	if err := engine.ValidateRequest(req); err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			uc.logger.Warn("invalid request shape", zap.Any("details", ve.Details))
		}
		return engine.ErrorDecision(domain.CustomerGuest)
	}

	// The two lookups are independent; issue them concurrently and join
	// before composing. No ordering between the fetches is assumed.
	var snapshot domain.CatalogSnapshot
	var record *domain.CustomerRecord

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := uc.catalog.Snapshot(gctx, req.DistinctProductIDs())
		if err != nil {
			return err
		}
		snapshot = s
		return nil
	})

	g.Go(func() error {
		r, err := uc.customer.Resolve(gctx, req.CustomerID, req.Email)
		if err != nil {
			return err
		}
		record = r
		return nil
	})

	if err := g.Wait(); err != nil {
		// Adapter failures are final for this request; retries, if any,
		// live inside the adapters.
		uc.logger.Error("collaborator lookup failed", zap.Error(err))
		return engine.ErrorDecision(domain.CustomerGuest)
	}

	decision := uc.engine.Decide(req, snapshot, record, req.PetAdviceCandidate)

	uc.logger.Info("decision computed",
		zap.String("status", string(decision.Status)),
		zap.String("customerType", string(decision.CustomerType)),
		zap.Int("itemCount", len(decision.Items)),
	)

	return decision
}

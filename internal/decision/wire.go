package decision

import (
	"go.uber.org/zap"

	"petstore/internal/config"
	"petstore/internal/decision/controller"
	"petstore/internal/decision/engine"
	"petstore/internal/decision/usecase"
)

// NewModule assembles the decision pipeline around the two lookup adapters.
func NewModule(
	cfg *config.Config,
	catalog usecase.CatalogLookup,
	customer usecase.CustomerLookup,
	logger *zap.Logger,
) *controller.DecideController {
	policy := engine.DefaultPolicy()
	if cfg.Engine.Rounding == string(engine.RoundHalfEven) {
		policy.Rounding = engine.RoundHalfEven
	}

	eng := engine.New(policy)
	uc := usecase.NewDecideUseCase(catalog, customer, eng, logger)
	return controller.NewDecideController(uc, logger)
}

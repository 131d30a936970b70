package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"petstore/internal/domain"
	"petstore/internal/dto"
	apperrors "petstore/internal/errors"
)

type DecideUseCase interface {
	Decide(ctx context.Context, req domain.OrderRequest) domain.OrderDecision
}

type DecideController struct {
	useCase DecideUseCase
	logger  *zap.Logger
}

func NewDecideController(useCase DecideUseCase, logger *zap.Logger) *DecideController {
	return &DecideController{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleDecide serves POST /v1/decisions. Accept, Reject and Error are
// payload states of a well-formed decision, all returned as 200; only a
// body that cannot be read as JSON is a 400.
func (c *DecideController) HandleDecide(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	lines := make([]domain.OrderLineRequest, len(req.Items))
	for i, item := range req.Items {
		lines[i] = domain.OrderLineRequest{
			ProductID:         item.ProductID,
			RequestedQuantity: item.RequestedQuantity,
		}
	}

	decision := c.useCase.Decide(r.Context(), domain.OrderRequest{
		CustomerID:         req.CustomerID,
		Email:              req.Email,
		PetAdviceCandidate: req.PetAdviceCandidate,
		Lines:              lines,
	})

	logger.Info("decision served", zap.String("status", string(decision.Status)))
	c.writeJSON(w, http.StatusOK, dto.FromDecision(decision))
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *DecideController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *DecideController) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		c.logger.Error("writing response", zap.Error(err))
	}
}

package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"petstore/internal/domain"
)

type mockUseCase struct {
	DecideFunc func(ctx context.Context, req domain.OrderRequest) domain.OrderDecision
}

func (m *mockUseCase) Decide(ctx context.Context, req domain.OrderRequest) domain.OrderDecision {
	return m.DecideFunc(ctx, req)
}

func newTestController(uc DecideUseCase) *DecideController {
	return NewDecideController(uc, zap.NewNop())
}

func performRequest(ctrl *DecideController, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/decisions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.HandleDecide(rec, req)
	return rec
}

func TestHandleDecide_AcceptResponseShape(t *testing.T) {
	uc := &mockUseCase{
		DecideFunc: func(ctx context.Context, req domain.OrderRequest) domain.OrderDecision {
			require.Len(t, req.Lines, 1)
			assert.Equal(t, "DD006", req.Lines[0].ProductID)
			assert.Equal(t, "usr_001", req.CustomerID)
			return domain.OrderDecision{
				Status:       domain.DecisionAccept,
				Message:      "Hi John, thank you for your order!",
				CustomerType: domain.CustomerSubscribed,
				Items: []domain.OrderLineResult{{
					ProductID:          "DD006",
					UnitPrice:          decimal.RequireFromString("54.99"),
					Quantity:           1,
					BundleDiscountRate: decimal.Zero,
					LineTotal:          decimal.RequireFromString("54.99"),
				}},
				ShippingCost:           decimal.RequireFromString("14.95"),
				Subtotal:               decimal.RequireFromString("54.99"),
				AdditionalDiscountRate: decimal.Zero,
				Total:                  decimal.RequireFromString("69.94"),
			}
		},
	}

	rec := performRequest(newTestController(uc),
		`{"customerId":"usr_001","items":[{"productId":"DD006","requestedQuantity":1}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Accept", resp["status"])
	assert.Equal(t, "Subscribed", resp["customerType"])
	assert.Equal(t, 69.94, resp["total"])
	assert.Equal(t, 14.95, resp["shippingCost"])

	items, ok := resp["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "DD006", item["productId"])
	assert.Equal(t, 54.99, item["unitPrice"])
	assert.Equal(t, 54.99, item["lineTotal"])
	assert.Equal(t, false, item["replenishFlag"])
}

func TestHandleDecide_RejectOmitsItemsAndPricing(t *testing.T) {
	uc := &mockUseCase{
		DecideFunc: func(ctx context.Context, req domain.OrderRequest) domain.OrderDecision {
			return domain.OrderDecision{
				Status:       domain.DecisionReject,
				Message:      "We are sorry, Doggy Delights is not available in the quantity you requested.",
				CustomerType: domain.CustomerGuest,
			}
		},
	}

	rec := performRequest(newTestController(uc),
		`{"items":[{"productId":"DD006","requestedQuantity":999}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Reject", resp["status"])
	_, hasItems := resp["items"]
	assert.False(t, hasItems)
	_, hasTotal := resp["total"]
	assert.False(t, hasTotal)
}

func TestHandleDecide_ErrorDecisionIsStill200(t *testing.T) {
	uc := &mockUseCase{
		DecideFunc: func(ctx context.Context, req domain.OrderRequest) domain.OrderDecision {
			return domain.OrderDecision{
				Status:       domain.DecisionError,
				Message:      "We are sorry for the technical difficulties we are currently facing.",
				CustomerType: domain.CustomerGuest,
			}
		},
	}

	rec := performRequest(newTestController(uc),
		`{"items":[{"productId":"DD006","requestedQuantity":1}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Error", resp["status"])
}

func TestHandleDecide_UnreadableBodyIs400(t *testing.T) {
	called := false
	uc := &mockUseCase{
		DecideFunc: func(ctx context.Context, req domain.OrderRequest) domain.OrderDecision {
			called = true
			return domain.OrderDecision{}
		},
	}

	rec := performRequest(newTestController(uc), `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp["error"])
}

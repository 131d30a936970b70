package engine

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petstore/internal/domain"
)

func newTestEngine() *Engine {
	return New(DefaultPolicy())
}

func TestDecide_SingleItemGuestUnderThreshold(t *testing.T) {
	catalog := domain.CatalogSnapshot{
		"DD006": {
			ProductID:         "DD006",
			Name:              "Doggy Delights",
			UnitPrice:         decimal.RequireFromString("54.99"),
			AvailableQuantity: 500,
			ReorderLevel:      50,
		},
	}
	req := domain.OrderRequest{
		Lines: []domain.OrderLineRequest{{ProductID: "DD006", RequestedQuantity: 1}},
	}

	decision := newTestEngine().Decide(req, catalog, nil, "")

	assert.Equal(t, domain.DecisionAccept, decision.Status)
	assert.Equal(t, domain.CustomerGuest, decision.CustomerType)
	assert.Equal(t, "54.99", decision.Subtotal.StringFixed(2))
	assert.Equal(t, "0", decision.AdditionalDiscountRate.String())
	assert.Equal(t, "14.95", decision.ShippingCost.StringFixed(2))
	assert.Equal(t, "69.94", decision.Total.StringFixed(2))

	require.Len(t, decision.Items, 1)
	assert.Equal(t, "0", decision.Items[0].BundleDiscountRate.String())
	assert.False(t, decision.Items[0].ReplenishFlag)
	assert.Empty(t, decision.PetAdvice)
}

func TestDecide_MultiUnitSubscriber(t *testing.T) {
	catalog := domain.CatalogSnapshot{
		"BP010": {
			ProductID:         "BP010",
			Name:              "Bark Park Buddy",
			UnitPrice:         decimal.RequireFromString("16.99"),
			AvailableQuantity: 200,
			ReorderLevel:      20,
		},
	}
	record := &domain.CustomerRecord{
		CustomerID:         "usr_001",
		DisplayName:        "John Doe",
		SubscriptionStatus: domain.SubscriptionActive,
	}
	req := domain.OrderRequest{
		CustomerID: "usr_001",
		Lines:      []domain.OrderLineRequest{{ProductID: "BP010", RequestedQuantity: 2}},
	}

	decision := newTestEngine().Decide(req, catalog, record, "Keep bottles for drinking only.")

	assert.Equal(t, domain.DecisionAccept, decision.Status)
	assert.Equal(t, domain.CustomerSubscribed, decision.CustomerType)
	require.Len(t, decision.Items, 1)
	assert.Equal(t, "32.28", decision.Items[0].LineTotal.StringFixed(2))
	assert.Equal(t, "0.1", decision.Items[0].BundleDiscountRate.String())
	assert.Equal(t, "32.28", decision.Subtotal.StringFixed(2))
	assert.Equal(t, "14.95", decision.ShippingCost.StringFixed(2))
	assert.Equal(t, "47.23", decision.Total.StringFixed(2))
	assert.Equal(t, "Keep bottles for drinking only.", decision.PetAdvice)
	assert.Contains(t, decision.Message, "Hi John,")
	assert.NotContains(t, decision.Message, "BP010")
}

func TestDecide_GuestNeverReceivesPetAdvice(t *testing.T) {
	catalog := domain.CatalogSnapshot{
		"DD006": {
			ProductID:         "DD006",
			UnitPrice:         decimal.RequireFromString("10.00"),
			AvailableQuantity: 10,
			ReorderLevel:      1,
		},
	}
	req := domain.OrderRequest{
		Lines: []domain.OrderLineRequest{{ProductID: "DD006", RequestedQuantity: 1}},
	}

	decision := newTestEngine().Decide(req, catalog, nil, "Brush your cat weekly.")

	assert.Equal(t, domain.DecisionAccept, decision.Status)
	assert.Empty(t, decision.PetAdvice)
}

func TestDecide_UnavailableProductRejects(t *testing.T) {
	catalog := domain.CatalogSnapshot{
		"BP010": {
			ProductID:         "BP010",
			Name:              "Bark Park Buddy",
			UnitPrice:         decimal.RequireFromString("16.99"),
			AvailableQuantity: 1,
			ReorderLevel:      5,
		},
	}
	req := domain.OrderRequest{
		Lines: []domain.OrderLineRequest{{ProductID: "BP010", RequestedQuantity: 3}},
	}

	decision := newTestEngine().Decide(req, catalog, nil, "")

	assert.Equal(t, domain.DecisionReject, decision.Status)
	assert.True(t, strings.HasPrefix(decision.Message, "We are sorry"))
	assert.Empty(t, decision.Items)
	assert.True(t, decision.Subtotal.IsZero())
}

func TestDecide_ReplenishFlagFromProjectedInventory(t *testing.T) {
	catalog := domain.CatalogSnapshot{
		"CM001": {
			ProductID:         "CM001",
			Name:              "Meow Munchies",
			UnitPrice:         decimal.RequireFromString("12.50"),
			AvailableQuantity: 50,
			ReorderLevel:      40,
		},
	}
	req := domain.OrderRequest{
		Lines: []domain.OrderLineRequest{{ProductID: "CM001", RequestedQuantity: 10}},
	}

	decision := newTestEngine().Decide(req, catalog, nil, "")

	require.Len(t, decision.Items, 1)
	assert.True(t, decision.Items[0].ReplenishFlag)
}

func TestDecide_Idempotent(t *testing.T) {
	catalog := domain.CatalogSnapshot{
		"DD006": {
			ProductID:         "DD006",
			Name:              "Doggy Delights",
			UnitPrice:         decimal.RequireFromString("54.99"),
			AvailableQuantity: 500,
			ReorderLevel:      50,
		},
		"BP010": {
			ProductID:         "BP010",
			Name:              "Bark Park Buddy",
			UnitPrice:         decimal.RequireFromString("16.99"),
			AvailableQuantity: 200,
			ReorderLevel:      20,
		},
	}
	record := &domain.CustomerRecord{
		CustomerID:         "usr_001",
		DisplayName:        "John Doe",
		SubscriptionStatus: domain.SubscriptionActive,
	}
	req := domain.OrderRequest{
		CustomerID: "usr_001",
		Lines: []domain.OrderLineRequest{
			{ProductID: "DD006", RequestedQuantity: 3},
			{ProductID: "BP010", RequestedQuantity: 2},
		},
	}

	eng := newTestEngine()
	first := eng.Decide(req, catalog, record, "advice")
	second := eng.Decide(req, catalog, record, "advice")

	assert.Equal(t, first, second)
}

func TestDecide_OrderLevelDiscountOverThreshold(t *testing.T) {
	catalog := domain.CatalogSnapshot{
		"PRM01": {
			ProductID:         "PRM01",
			Name:              "Premium Aquarium Kit",
			UnitPrice:         decimal.RequireFromString("199.99"),
			AvailableQuantity: 30,
			ReorderLevel:      5,
		},
	}
	req := domain.OrderRequest{
		Lines: []domain.OrderLineRequest{{ProductID: "PRM01", RequestedQuantity: 2}},
	}

	decision := newTestEngine().Decide(req, catalog, nil, "")

	// 199.99 + 199.99*0.9 = 379.98 (rounded once), over 300:
	// 379.98 * 0.85 = 322.98 (exactly), free shipping.
	assert.Equal(t, domain.DecisionAccept, decision.Status)
	assert.Equal(t, "379.98", decision.Subtotal.StringFixed(2))
	assert.Equal(t, "0.15", decision.AdditionalDiscountRate.String())
	assert.Equal(t, "0.00", decision.ShippingCost.StringFixed(2))
	assert.Equal(t, "322.98", decision.Total.StringFixed(2))
}

func TestDecide_PreservesLineOrder(t *testing.T) {
	catalog := domain.CatalogSnapshot{
		"A1": {ProductID: "A1", UnitPrice: decimal.RequireFromString("1.00"), AvailableQuantity: 10},
		"B2": {ProductID: "B2", UnitPrice: decimal.RequireFromString("2.00"), AvailableQuantity: 10},
	}
	req := domain.OrderRequest{
		Lines: []domain.OrderLineRequest{
			{ProductID: "B2", RequestedQuantity: 1},
			{ProductID: "A1", RequestedQuantity: 1},
			{ProductID: "B2", RequestedQuantity: 1},
		},
	}

	decision := newTestEngine().Decide(req, catalog, nil, "")

	require.Len(t, decision.Items, 3)
	assert.Equal(t, "B2", decision.Items[0].ProductID)
	assert.Equal(t, "A1", decision.Items[1].ProductID)
	assert.Equal(t, "B2", decision.Items[2].ProductID)
}

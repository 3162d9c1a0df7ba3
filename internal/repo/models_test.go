package repo_test

import (
	"database/sql"
	"testing"
	"time"

	"order-amendment-service/internal/entities"
	"order-amendment-service/internal/repo"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderToEntity(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 11, 55, 0, 0, time.UTC)

	dto := repo.Order{
		ID:            42,
		Status:        "processing",
		CustomerID:    sql.NullInt64{Int64: 7, Valid: true},
		CreatedAt:     createdAt,
		Total:         decimal.NewFromInt(105),
		Subtotal:      decimal.NewFromInt(100),
		ShippingTotal: decimal.NewFromInt(10),
		DiscountTotal: decimal.NewFromInt(5),
	}
	items := []repo.Item{
		{ID: 1, OrderID: 42, ProductID: 11, Name: sql.NullString{String: "Mug", Valid: true}, Quantity: 2, LineTotal: decimal.NewFromInt(60)},
		{ID: 2, OrderID: 42, ProductID: 12, Quantity: 1, LineTotal: decimal.NewFromInt(40)},
	}
	taxes := map[int64][]repo.ItemTax{
		1: {{ItemID: 1, RateID: "vat-21", Total: decimal.NewFromFloat(12.6)}},
	}
	meta := []repo.Meta{
		{OrderID: 42, Key: repo.MetaAmendedBy, Value: "43"},
		{OrderID: 42, Key: "_billing_email", Value: "noise"},
	}

	order := repo.OrderToEntity(dto, items, taxes, meta)

	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, "processing", order.Status)
	assert.Equal(t, int64(7), order.CustomerID)
	assert.Equal(t, createdAt, order.CreatedAt)
	assert.Equal(t, int64(43), order.SupersededBy)
	assert.Zero(t, order.Supersedes)
	assert.True(t, order.IsAmendment() == false)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Mug", order.Items[0].Name)
	require.Contains(t, order.Items[0].Taxes, "vat-21")
	assert.True(t, decimal.NewFromFloat(12.6).Equal(order.Items[0].Taxes["vat-21"]))
	assert.Empty(t, order.Items[1].Name)
	assert.Nil(t, order.Items[1].Taxes)
}

func TestOrderToEntity_GuestAndAmendment(t *testing.T) {
	dto := repo.Order{ID: 43, Status: "processing"}
	meta := []repo.Meta{{OrderID: 43, Key: repo.MetaAmendedFrom, Value: "42"}}

	order := repo.OrderToEntity(dto, nil, nil, meta)

	assert.Zero(t, order.CustomerID)
	assert.Equal(t, int64(42), order.Supersedes)
	assert.True(t, order.IsAmendment())
	assert.Nil(t, order.Items)
}

func TestOrderToEntity_MalformedMeta(t *testing.T) {
	dto := repo.Order{ID: 44}
	meta := []repo.Meta{{OrderID: 44, Key: repo.MetaAmendedFrom, Value: "not-a-number"}}

	order := repo.OrderToEntity(dto, nil, nil, meta)

	assert.Zero(t, order.Supersedes)
	assert.False(t, order.IsAmendment())
}

func TestItemToEntity(t *testing.T) {
	item := repo.ItemToEntity(repo.Item{
		ID:        5,
		ProductID: 11,
		Name:      sql.NullString{String: "Mug", Valid: true},
		Quantity:  3,
		LineTotal: decimal.NewFromInt(90),
	}, []repo.ItemTax{
		{ItemID: 5, RateID: "vat-21", Total: decimal.NewFromInt(18)},
		{ItemID: 5, RateID: "eco", Total: decimal.NewFromInt(1)},
	})

	assert.Equal(t, entities.LineItem{
		ID:        5,
		ProductID: 11,
		Name:      "Mug",
		Quantity:  3,
		LineTotal: decimal.NewFromInt(90),
		Taxes: map[string]decimal.Decimal{
			"vat-21": decimal.NewFromInt(18),
			"eco":    decimal.NewFromInt(1),
		},
	}, item)
}

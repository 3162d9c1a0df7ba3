package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"order-amendment-service/internal/entities"
	"order-amendment-service/internal/service"
	mocks "order-amendment-service/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T, now time.Time) (*service.CartService, *mocks.MockOrderStore, *mocks.MockSessionStore) {
	t.Helper()

	orders := mocks.NewMockOrderStore(t)
	sessions := mocks.NewMockSessionStore(t)
	tokens := mocks.NewMockTokenStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eligibility := service.NewEligibility(testPolicy(), func() time.Time { return now })
	edits := service.NewEditService(logger, orders, sessions, tokens, eligibility, testPolicy())

	return service.NewCartService(logger, orders, edits, eligibility), orders, sessions
}

func TestCartService_OnCartRecalculated(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	editedOrder := entities.Order{
		ID:        42,
		CreatedAt: now.Add(-5 * time.Minute),
		Total:     decimal.NewFromInt(105),
	}

	t.Run("active edit adds a single credit fee", func(t *testing.T) {
		svc, orders, sessions := newCartService(t, now)
		sessions.EXPECT().Get("sess", "edit_order").Return("42", true).Once()
		orders.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(editedOrder, nil).Once()

		adjustment, err := svc.OnCartRecalculated(context.Background(), "sess", entities.Cart{
			Total: decimal.NewFromInt(70),
		})

		require.NoError(t, err)
		require.Len(t, adjustment.Cart.Fees, 1)
		assert.Equal(t, entities.CreditFeeName, adjustment.Cart.Fees[0].Name)
		assert.True(t, decimal.NewFromInt(-105).Equal(adjustment.Cart.Fees[0].Amount))
		assert.True(t, decimal.NewFromInt(35).Equal(adjustment.RefundPreview))
	})

	t.Run("credit is replaced, never stacked", func(t *testing.T) {
		svc, orders, sessions := newCartService(t, now)
		sessions.EXPECT().Get("sess", "edit_order").Return("42", true).Once()
		orders.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(editedOrder, nil).Once()

		cart := entities.Cart{
			Total: decimal.NewFromInt(130),
			Fees: []entities.FeeLine{
				{Name: "Gift wrap", Amount: decimal.NewFromInt(5)},
				{Name: entities.CreditFeeName, Amount: decimal.NewFromInt(-105)},
			},
		}

		adjustment, err := svc.OnCartRecalculated(context.Background(), "sess", cart)

		require.NoError(t, err)
		require.Len(t, adjustment.Cart.Fees, 2)
		assert.Equal(t, "Gift wrap", adjustment.Cart.Fees[0].Name)
		assert.Equal(t, entities.CreditFeeName, adjustment.Cart.Fees[1].Name)
		assert.True(t, adjustment.RefundPreview.IsZero())
	})

	t.Run("no edit session leaves the cart alone", func(t *testing.T) {
		svc, _, sessions := newCartService(t, now)
		sessions.EXPECT().Get("sess", "edit_order").Return("", false).Once()

		adjustment, err := svc.OnCartRecalculated(context.Background(), "sess", entities.Cart{
			Total: decimal.NewFromInt(70),
		})

		require.NoError(t, err)
		assert.Empty(t, adjustment.Cart.Fees)
		assert.True(t, adjustment.RefundPreview.IsZero())
	})

	t.Run("lapsed window drops credit and clears the session", func(t *testing.T) {
		svc, orders, sessions := newCartService(t, now)
		expired := editedOrder
		expired.CreatedAt = now.Add(-20 * time.Minute)

		sessions.EXPECT().Get("sess", "edit_order").Return("42", true).Once()
		orders.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(expired, nil).Once()
		sessions.EXPECT().Delete("sess", "edit_order").Return().Once()

		adjustment, err := svc.OnCartRecalculated(context.Background(), "sess", entities.Cart{
			Total: decimal.NewFromInt(70),
			Fees: []entities.FeeLine{
				{Name: entities.CreditFeeName, Amount: decimal.NewFromInt(-105)},
			},
		})

		require.NoError(t, err)
		assert.Empty(t, adjustment.Cart.Fees)
	})

	t.Run("no refund preview when new cart costs more", func(t *testing.T) {
		svc, orders, sessions := newCartService(t, now)
		sessions.EXPECT().Get("sess", "edit_order").Return("42", true).Once()
		orders.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(editedOrder, nil).Once()

		adjustment, err := svc.OnCartRecalculated(context.Background(), "sess", entities.Cart{
			Total: decimal.NewFromInt(150),
		})

		require.NoError(t, err)
		assert.True(t, adjustment.RefundPreview.IsZero())
	})
}

package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"order-amendment-service/internal/entities"
	"order-amendment-service/internal/service"
	mocks "order-amendment-service/internal/service/mocks"
	trmmocks "order-amendment-service/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transitionFixture struct {
	svc      *service.TransitionService
	orders   *mocks.MockOrderStore
	sessions *mocks.MockSessionStore
	notifier *mocks.MockNotifier
}

func newTransitionService(t *testing.T) transitionFixture {
	t.Helper()

	orders := mocks.NewMockOrderStore(t)
	sessions := mocks.NewMockSessionStore(t)
	tokens := mocks.NewMockTokenStore(t)
	notifier := mocks.NewMockNotifier(t)
	txManager := trmmocks.NewMockManager(t)
	txManager.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	eligibility := service.NewEligibility(testPolicy(), func() time.Time { return now })
	edits := service.NewEditService(logger, orders, sessions, tokens, eligibility, testPolicy())
	reconciler := service.NewReconciler(logger, txManager, orders, notifier)

	return transitionFixture{
		svc:      service.NewTransitionService(logger, txManager, orders, edits, reconciler),
		orders:   orders,
		sessions: sessions,
		notifier: notifier,
	}
}

func TestTransitionService_OnOrderPlaced(t *testing.T) {
	oldOrder := entities.Order{
		ID:            42,
		Status:        "processing",
		CustomerID:    7,
		Subtotal:      decimal.NewFromInt(100),
		ShippingTotal: decimal.NewFromInt(10),
		DiscountTotal: decimal.NewFromInt(5),
		Total:         decimal.NewFromInt(105),
		Items: []entities.LineItem{
			{ID: 1, ProductID: 11, Quantity: 1, LineTotal: decimal.NewFromInt(100)},
		},
	}
	newOrder := entities.Order{
		ID:            43,
		Status:        "processing",
		CustomerID:    7,
		ShippingTotal: decimal.NewFromInt(10),
		Total:         decimal.NewFromInt(70),
		Items: []entities.LineItem{
			{ID: 3, ProductID: 11, Quantity: 1, LineTotal: decimal.NewFromInt(60)},
		},
	}

	t.Run("replacement links, cancels and reconciles", func(t *testing.T) {
		f := newTransitionService(t)
		f.sessions.EXPECT().Get("sess", "edit_order").Return("42", true).Once()
		f.orders.EXPECT().GetOrderByID(mock.Anything, int64(43)).Return(newOrder, nil).Once()
		f.orders.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(oldOrder, nil).Once()

		f.orders.EXPECT().SetMeta(mock.Anything, int64(43), "_amended_from", "42").Return(nil).Once()
		f.orders.EXPECT().SetMeta(mock.Anything, int64(42), "_amended_by", "43").Return(nil).Once()
		f.orders.EXPECT().AddNote(mock.Anything, int64(43),
			"Order placed after editing. Old order number: 42").Return(nil).Once()
		f.orders.EXPECT().UpdateStatus(mock.Anything, int64(42), entities.StatusCancelled).Return(nil).Once()
		f.orders.EXPECT().AddNote(mock.Anything, int64(42),
			"Order cancelled after editing. New order number: 43").Return(nil).Once()

		f.sessions.EXPECT().Delete("sess", "edit_order").Return().Once()

		// 105 charged before minus 70 now
		f.orders.EXPECT().CreateRefund(mock.Anything, mock.MatchedBy(func(req entities.RefundRequest) bool {
			return req.OrderID == 42 && req.Amount.Equal(decimal.NewFromInt(35)) && req.RefundPayment
		})).Return(nil).Once()

		err := f.svc.OnOrderPlaced(context.Background(), "sess", 43)

		require.NoError(t, err)
	})

	t.Run("no edit session is a no-op", func(t *testing.T) {
		f := newTransitionService(t)
		f.sessions.EXPECT().Get("sess", "edit_order").Return("", false).Once()

		err := f.svc.OnOrderPlaced(context.Background(), "sess", 43)

		assert.NoError(t, err)
	})

	t.Run("transition fails before commit", func(t *testing.T) {
		f := newTransitionService(t)
		storeErr := errors.New("db down")
		f.sessions.EXPECT().Get("sess", "edit_order").Return("42", true).Once()
		f.orders.EXPECT().GetOrderByID(mock.Anything, int64(43)).Return(newOrder, nil).Once()
		f.orders.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(oldOrder, nil).Once()
		f.orders.EXPECT().SetMeta(mock.Anything, int64(43), "_amended_from", "42").Return(storeErr).Once()

		err := f.svc.OnOrderPlaced(context.Background(), "sess", 43)

		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("reconciliation failure does not fail the placement", func(t *testing.T) {
		f := newTransitionService(t)
		f.sessions.EXPECT().Get("sess", "edit_order").Return("42", true).Once()
		f.orders.EXPECT().GetOrderByID(mock.Anything, int64(43)).Return(newOrder, nil).Once()
		f.orders.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(oldOrder, nil).Once()

		f.orders.EXPECT().SetMeta(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
		f.orders.EXPECT().UpdateStatus(mock.Anything, int64(42), entities.StatusCancelled).Return(nil).Once()
		f.orders.EXPECT().AddNote(mock.Anything, int64(43), mock.Anything).Return(nil).Once()
		f.orders.EXPECT().AddNote(mock.Anything, int64(42),
			"Order cancelled after editing. New order number: 43").Return(nil).Once()

		f.sessions.EXPECT().Delete("sess", "edit_order").Return().Once()

		gatewayErr := errors.New("gateway refused")
		f.orders.EXPECT().CreateRefund(mock.Anything, mock.Anything).Return(gatewayErr).Twice()
		f.orders.EXPECT().AddNote(mock.Anything, int64(42), mock.MatchedBy(func(note string) bool {
			return len(note) > 0 && note != "Order cancelled after editing. New order number: 43"
		})).Return(nil).Twice()
		f.notifier.EXPECT().AdminFailure(mock.Anything, mock.Anything, mock.Anything).Return().Twice()

		err := f.svc.OnOrderPlaced(context.Background(), "sess", 43)

		assert.NoError(t, err)
	})

	t.Run("missing new order", func(t *testing.T) {
		f := newTransitionService(t)
		f.sessions.EXPECT().Get("sess", "edit_order").Return("42", true).Once()
		f.orders.EXPECT().GetOrderByID(mock.Anything, int64(43)).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		err := f.svc.OnOrderPlaced(context.Background(), "sess", 43)

		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

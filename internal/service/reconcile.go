package service

import (
	"context"
	"fmt"
	"log/slog"

	"order-amendment-service/internal/entities"
	"order-amendment-service/pkg/trm"

	"github.com/shopspring/decimal"
)

// Reconciler settles the financial side of a superseded order: it computes
// the monetary delta between the old and the new order, refunds it through
// the payment gateway and puts the old order's items back in stock.
type Reconciler struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderStore
	notifier  Notifier
}

func NewReconciler(logger *slog.Logger, txManager trm.Manager, orders OrderStore, notifier Notifier) *Reconciler {
	return &Reconciler{
		logger:    logger.With(slog.String("service", "reconcile")),
		txManager: txManager,
		orders:    orders,
		notifier:  notifier,
	}
}

// Reconcile refunds the delta and restocks the old order's items.
//
// A non-positive delta means the customer paid at least as much again, so
// only the restock is issued. A positive delta is attempted as refund plus
// restock; when the gateway refuses, one retry runs with the payment refund
// disabled so inventory is still reconciled and only the money has to be
// returned manually. Both the partial and the hard failure are escalated to
// the administrator; the returned error is non-nil only when even the
// restock failed.
func (r *Reconciler) Reconcile(ctx context.Context, oldOrder, newOrder entities.Order) (entities.ReconcileOutcome, error) {
	amount := RefundAmount(oldOrder, newOrder)
	outcome := entities.ReconcileOutcome{RefundAmount: amount}

	req := entities.RefundRequest{
		OrderID:       oldOrder.ID,
		Amount:        amount,
		Reason:        entities.RefundReason,
		LineItems:     restockLineItems(oldOrder),
		RefundPayment: amount.IsPositive(),
		RestockItems:  true,
	}
	if !amount.IsPositive() {
		req.Amount = decimal.Zero
	}

	err := r.createRefund(ctx, req)
	if err == nil {
		outcome.Restocked = true
		outcome.PaymentRefunded = req.RefundPayment
		r.logger.InfoContext(ctx, "refund and restock done",
			slog.Int64("order_id", oldOrder.ID),
			slog.String("refund_amount", amount.String()),
			slog.Bool("payment_refunded", outcome.PaymentRefunded),
		)
		return outcome, nil
	}

	if !req.RefundPayment {
		r.escalate(ctx, oldOrder, fmt.Sprintf("Error attempting to restock: %s", err))
		return outcome, err
	}

	r.escalate(ctx, oldOrder, fmt.Sprintf("First (of two) attempt to create refund: %s", err))

	// повторяем без возврата денег, чтобы хотя бы склад сошёлся
	req.RefundPayment = false
	if retryErr := r.createRefund(ctx, req); retryErr != nil {
		r.escalate(ctx, oldOrder, fmt.Sprintf(
			"Last (of two) attempt to create refund and to do the restock (without automatic refund of the amount): %s", retryErr))
		return outcome, retryErr
	}

	outcome.Restocked = true
	r.escalate(ctx, oldOrder, "You have to manually issue the refund of the amount")
	return outcome, nil
}

func (r *Reconciler) createRefund(ctx context.Context, req entities.RefundRequest) error {
	return r.txManager.Do(ctx, func(ctx context.Context) error {
		return r.orders.CreateRefund(ctx, req)
	})
}

// escalate records a reconciliation failure everywhere an administrator
// can see it: error log, order note and notification mail. The customer
// flow is never interrupted.
func (r *Reconciler) escalate(ctx context.Context, order entities.Order, message string) {
	r.logger.ErrorContext(ctx, "order amendment reconciliation problem",
		slog.Int64("order_id", order.ID),
		slog.String("reason", message),
	)
	if err := r.orders.AddNote(ctx, order.ID, "Error while modifying order - "+message); err != nil {
		r.logger.ErrorContext(ctx, "failed to add failure note",
			slog.Int64("order_id", order.ID), slog.Any("error", err))
	}
	r.notifier.AdminFailure(ctx, order, message)
}

// RefundAmount is the delta owed back to the customer: what the old order
// charged (subtotal plus shipping minus discounts) minus what the new order
// costs (line totals plus shipping). Negative or zero when the new order is
// at least as expensive.
func RefundAmount(oldOrder, newOrder entities.Order) decimal.Decimal {
	newAmount := newOrder.ShippingTotal
	for _, item := range newOrder.Items {
		newAmount = newAmount.Add(item.LineTotal)
	}

	oldAmount := oldOrder.Subtotal.
		Add(oldOrder.ShippingTotal).
		Sub(oldOrder.DiscountTotal)

	return oldAmount.Sub(newAmount)
}

// restockLineItems builds the restock request from the old order's lines.
// Refund totals stay zero: the money moves through RefundRequest.Amount,
// these lines only drive the inventory bookkeeping.
func restockLineItems(order entities.Order) []entities.RefundLineItem {
	if len(order.Items) == 0 {
		return nil
	}

	lineItems := make([]entities.RefundLineItem, 0, len(order.Items))
	for _, item := range order.Items {
		lineItems = append(lineItems, entities.RefundLineItem{
			ItemID:      item.ID,
			Quantity:    item.Quantity,
			RefundTotal: decimal.Zero,
			RefundTax:   item.Taxes,
		})
	}
	return lineItems
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"order-amendment-service/internal/entities"
	"order-amendment-service/internal/repo"
	"order-amendment-service/pkg/trm"
)

// TransitionService moves an amendment pair through the replacement:
// it links the new order to the old one, cancels the old order and hands
// the pair to the reconciler.
type TransitionService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	orders     OrderStore
	edits      *EditService
	reconciler *Reconciler
}

func NewTransitionService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderStore,
	edits *EditService,
	reconciler *Reconciler,
) *TransitionService {
	return &TransitionService{
		logger:     logger.With(slog.String("service", "transition")),
		txManager:  txManager,
		orders:     orders,
		edits:      edits,
		reconciler: reconciler,
	}
}

// OnOrderPlaced fires when the platform finalizes a newly placed order.
// Without an active edit session it is a no-op. Otherwise the supersession
// link, the audit notes and the cancellation commit in one transaction;
// the edit session is cleared and the reconciler runs afterwards.
//
// Eligibility is deliberately not re-validated here: if the window lapsed
// between the last cart recalculation and checkout, the transition still
// proceeds. A reconciliation failure never rolls the transition back - the
// linked, cancelled old order stays committed and the failure is escalated
// to an administrator only.
func (s *TransitionService) OnOrderPlaced(ctx context.Context, sessionID string, newOrderID int64) error {
	oldOrderID, ok := s.edits.CurrentEdit(sessionID)
	if !ok {
		return nil
	}

	newOrder, err := s.orders.GetOrderByID(ctx, newOrderID)
	if err != nil {
		return fmt.Errorf("failed to load new order: %w", err)
	}
	oldOrder, err := s.orders.GetOrderByID(ctx, oldOrderID)
	if err != nil {
		return fmt.Errorf("failed to load old order: %w", err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.SetMeta(ctx, newOrder.ID, repo.MetaAmendedFrom, repo.FormatOrderID(oldOrder.ID)); err != nil {
			return err
		}
		if err := s.orders.SetMeta(ctx, oldOrder.ID, repo.MetaAmendedBy, repo.FormatOrderID(newOrder.ID)); err != nil {
			return err
		}
		if err := s.orders.AddNote(ctx, newOrder.ID,
			fmt.Sprintf("Order placed after editing. Old order number: %d", oldOrder.ID)); err != nil {
			return err
		}
		if err := s.orders.UpdateStatus(ctx, oldOrder.ID, entities.StatusCancelled); err != nil {
			return err
		}
		return s.orders.AddNote(ctx, oldOrder.ID,
			fmt.Sprintf("Order cancelled after editing. New order number: %d", newOrder.ID))
	})
	if err != nil {
		return fmt.Errorf("failed to transition amendment pair: %w", err)
	}

	s.edits.EndEdit(sessionID)
	s.logger.InfoContext(ctx, "edited order placed",
		slog.Int64("old_order_id", oldOrder.ID),
		slog.Int64("new_order_id", newOrder.ID),
	)

	oldOrder.Status = entities.StatusCancelled
	oldOrder.SupersededBy = newOrder.ID
	newOrder.Supersedes = oldOrder.ID

	if _, err := s.reconciler.Reconcile(ctx, oldOrder, newOrder); err != nil {
		// уже эскалировано внутри reconciler, транзакцию не откатываем
		s.logger.ErrorContext(ctx, "reconciliation failed, old order cancelled but not reconciled",
			slog.Int64("old_order_id", oldOrder.ID),
			slog.Any("error", err),
		)
	}

	return nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"order-amendment-service/internal/entities"

	"github.com/shopspring/decimal"
)

// CartService applies the amendment credit to an in-progress cart.
type CartService struct {
	logger      *slog.Logger
	orders      OrderStore
	edits       *EditService
	eligibility *Eligibility
}

func NewCartService(logger *slog.Logger, orders OrderStore, edits *EditService, eligibility *Eligibility) *CartService {
	return &CartService{
		logger:      logger.With(slog.String("service", "cart")),
		orders:      orders,
		edits:       edits,
		eligibility: eligibility,
	}
}

// CartAdjustment is the adjusted cart plus the amount that will be refunded
// on confirmation when the credit exceeds what the new cart costs.
type CartAdjustment struct {
	Cart          entities.Cart
	RefundPreview decimal.Decimal
}

// OnCartRecalculated is invoked by the platform on every cart total
// recomputation. While the session has a valid edit, the returned cart
// carries exactly one Credit fee line worth the superseded order's total;
// a previous Credit line is replaced, never stacked. A lapsed window clears
// the edit session silently and the cart simply loses its credit.
func (s *CartService) OnCartRecalculated(ctx context.Context, sessionID string, cart entities.Cart) (CartAdjustment, error) {
	fees := make([]entities.FeeLine, 0, len(cart.Fees))
	for _, fee := range cart.Fees {
		if fee.Name != entities.CreditFeeName {
			fees = append(fees, fee)
		}
	}
	adjusted := entities.Cart{Total: cart.Total, Fees: fees}

	orderID, ok := s.edits.CurrentEdit(sessionID)
	if !ok {
		return CartAdjustment{Cart: adjusted}, nil
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return CartAdjustment{}, fmt.Errorf("failed to load edited order: %w", err)
	}

	if !s.eligibility.InTimeWindow(order) {
		s.edits.EndEdit(sessionID)
		s.logger.DebugContext(ctx, "edit window lapsed, credit dropped", slog.Int64("order_id", orderID))
		return CartAdjustment{Cart: adjusted}, nil
	}

	adjusted.Fees = append(adjusted.Fees, entities.FeeLine{
		Name:   entities.CreditFeeName,
		Amount: order.Total.Neg(),
	})

	adjustment := CartAdjustment{Cart: adjusted}
	if order.Total.GreaterThan(cart.Total) {
		adjustment.RefundPreview = order.Total.Sub(cart.Total)
	}

	return adjustment, nil
}

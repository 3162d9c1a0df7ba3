package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"order-amendment-service/internal/config"
	"order-amendment-service/internal/entities"

	"github.com/shopspring/decimal"
)

// editOrderKey is the session value holding the id of the order currently
// being edited.
const editOrderKey = "edit_order"

// EditService tracks which order a visitor session is amending.
type EditService struct {
	logger      *slog.Logger
	orders      OrderStore
	sessions    SessionStore
	tokens      TokenStore
	eligibility *Eligibility
	conditions  string
}

func NewEditService(
	logger *slog.Logger,
	orders OrderStore,
	sessions SessionStore,
	tokens TokenStore,
	eligibility *Eligibility,
	policy config.Policy,
) *EditService {
	return &EditService{
		logger:      logger.With(slog.String("service", "edit")),
		orders:      orders,
		sessions:    sessions,
		tokens:      tokens,
		eligibility: eligibility,
		conditions:  policy.Conditions,
	}
}

// BeginEdit opens an edit session for the order. The token is single use
// and bound to the customer/order pair, so a stolen or replayed link is
// rejected before the order is even loaded.
func (s *EditService) BeginEdit(ctx context.Context, sessionID string, customerID, orderID int64, token string) error {
	if !s.tokens.Consume(token, customerID, orderID) {
		return entities.ErrInvalidToken
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}

	if order.CustomerID != customerID || !s.eligibility.CanBeModified(order) {
		return entities.ErrNotEligible
	}

	s.sessions.Set(sessionID, editOrderKey, strconv.FormatInt(orderID, 10))
	s.logger.InfoContext(ctx, "started editing order",
		slog.Int64("order_id", orderID),
		slog.Int64("customer_id", customerID),
	)
	return nil
}

// CurrentEdit returns the order the session is editing, if any.
func (s *EditService) CurrentEdit(sessionID string) (int64, bool) {
	value, ok := s.sessions.Get(sessionID, editOrderKey)
	if !ok || value == "" {
		return 0, false
	}
	orderID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return orderID, true
}

// EndEdit clears the edit marker. Called on successful replacement, on
// detected expiry and on explicit cancel.
func (s *EditService) EndEdit(sessionID string) {
	s.sessions.Delete(sessionID, editOrderKey)
}

// EditOverview is the edit context shown on cart and checkout pages.
type EditOverview struct {
	OrderID     int64
	Credit      decimal.Decimal
	SecondsLeft int
	Conditions  string
}

// Overview describes the active edit session: the credit the customer
// carries, the remaining seconds (cosmetic countdown) and the configured
// conditions text. A lapsed window clears the session silently.
func (s *EditService) Overview(ctx context.Context, sessionID string) (EditOverview, error) {
	orderID, ok := s.CurrentEdit(sessionID)
	if !ok {
		return EditOverview{}, entities.ErrNoEditSession
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return EditOverview{}, fmt.Errorf("failed to load edited order: %w", err)
	}

	if !s.eligibility.InTimeWindow(order) {
		s.EndEdit(sessionID)
		return EditOverview{}, entities.ErrNoEditSession
	}

	return EditOverview{
		OrderID:     order.ID,
		Credit:      order.Total,
		SecondsLeft: int(s.eligibility.TimeLeft(order).Seconds()),
		Conditions:  s.conditions,
	}, nil
}

// OrderSummary is one row of the customer's order list, with the UI
// signals attached: whether the order can still be edited and the token
// authorizing that action.
type OrderSummary struct {
	Order       entities.Order
	Editable    bool
	SecondsLeft int
	EditToken   string
}

// ListOrders returns the customer's orders with editability flags. Each
// editable order gets a fresh single-use edit token.
func (s *EditService) ListOrders(ctx context.Context, customerID int64) ([]OrderSummary, error) {
	orders, err := s.orders.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, order := range orders {
		summary := OrderSummary{Order: order}
		if s.eligibility.CanBeModified(order) {
			summary.Editable = true
			summary.SecondsLeft = int(s.eligibility.TimeLeft(order).Seconds())
			summary.EditToken = s.tokens.Issue(customerID, order.ID)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

package service

import (
	"context"

	"order-amendment-service/internal/entities"
)

// OrderStore is the slice of the commerce platform's order API the
// amendment flow depends on.
type OrderStore interface {
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) error
	AddNote(ctx context.Context, orderID int64, note string) error
	SetMeta(ctx context.Context, orderID int64, key, value string) error
	CreateRefund(ctx context.Context, req entities.RefundRequest) error
}

// SessionStore holds ephemeral per-visitor state.
type SessionStore interface {
	Get(sessionID, key string) (string, bool)
	Set(sessionID, key, value string)
	Delete(sessionID, key string)
}

// TokenStore issues and validates single-use edit authorization tokens.
type TokenStore interface {
	Issue(customerID, orderID int64) string
	Consume(token string, customerID, orderID int64) bool
}

// Notifier surfaces unrecoverable reconciliation failures to an
// administrator. Best effort, never returns an error.
type Notifier interface {
	AdminFailure(ctx context.Context, order entities.Order, message string)
}

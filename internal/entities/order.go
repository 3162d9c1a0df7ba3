package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// StatusCancelled is the status an amended order transitions to.
const StatusCancelled = "cancelled"

type Order struct {
	ID            int64
	Status        string
	CustomerID    int64 // 0 = guest checkout
	CreatedAt     time.Time
	Total         decimal.Decimal
	Subtotal      decimal.Decimal
	ShippingTotal decimal.Decimal
	DiscountTotal decimal.Decimal

	// Supersedes is the id of the order this one replaced, SupersededBy is
	// the id of the order that replaced this one. Zero means no link.
	Supersedes   int64
	SupersededBy int64

	Items []LineItem
}

type LineItem struct {
	ID        int64
	ProductID int64
	Name      string
	Quantity  int
	LineTotal decimal.Decimal
	// Taxes maps tax rate id to the tax amount charged on this line.
	Taxes map[string]decimal.Decimal
}

// IsAmendment reports whether the order was placed as a replacement of
// another order. Such orders can never be edited again.
func (o Order) IsAmendment() bool {
	return o.Supersedes != 0
}

func (o Order) HasStatus(status string) bool {
	return o.Status == status
}

type Note struct {
	ID        int64
	OrderID   int64
	Content   string
	CreatedAt time.Time
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNotEligible   = errors.New("order cannot be edited")
	ErrInvalidToken  = errors.New("invalid or already used edit token")
	ErrNoEditSession = errors.New("no active edit session")
)

package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

// RefundReason is recorded on every refund created by the amendment flow.
const RefundReason = "Modified order by user"

type RefundRequest struct {
	OrderID       int64
	Amount        decimal.Decimal
	Reason        string
	LineItems     []RefundLineItem
	RefundPayment bool
	RestockItems  bool
}

// RefundLineItem describes one restocked line of the superseded order.
// RefundTotal stays zero: the monetary part of the refund is carried by
// RefundRequest.Amount, the line items only drive inventory bookkeeping.
type RefundLineItem struct {
	ItemID      int64
	Quantity    int
	RefundTotal decimal.Decimal
	RefundTax   map[string]decimal.Decimal
}

// ReconcileOutcome reports what the reconciler managed to do for a
// superseded order. PaymentRefunded is false when the gateway refund failed
// and only the restock went through.
type ReconcileOutcome struct {
	RefundAmount    decimal.Decimal
	Restocked       bool
	PaymentRefunded bool
}

// ErrGatewayRefund wraps structured errors reported by the payment gateway.
var ErrGatewayRefund = errors.New("payment gateway refused the refund")

package entities

import "github.com/shopspring/decimal"

// CreditFeeName labels the negative fee line that applies the superseded
// order's total to the new cart.
const CreditFeeName = "Credit"

// Cart is the snapshot the commerce platform hands over on every total
// recalculation. The platform replaces its fee lines with whatever the
// adjuster returns, so fees are replaced per cycle, never accumulated.
type Cart struct {
	Total decimal.Decimal
	Fees  []FeeLine
}

type FeeLine struct {
	Name   string
	Amount decimal.Decimal
}

// CreditFee returns the credit fee line of the cart, if any.
func (c Cart) CreditFee() (FeeLine, bool) {
	for _, fee := range c.Fees {
		if fee.Name == CreditFeeName {
			return fee, true
		}
	}
	return FeeLine{}, false
}

// Payable is the cart total after fees, floored at zero. A credit larger
// than the total cannot push the payable amount below zero, the remainder
// is refunded instead.
func (c Cart) Payable() decimal.Decimal {
	total := c.Total
	for _, fee := range c.Fees {
		total = total.Add(fee.Amount)
	}
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

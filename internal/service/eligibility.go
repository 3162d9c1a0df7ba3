package service

import (
	"time"

	"order-amendment-service/internal/config"
	"order-amendment-service/internal/entities"
)

// Eligibility decides whether an order may still be amended. Every
// component that gates an action on editability goes through it, the rules
// live nowhere else.
type Eligibility struct {
	status string
	window time.Duration
	now    func() time.Time
}

// NewEligibility builds the evaluator from the configured policy. The clock
// is injected so the time window boundary can be pinned down in tests;
// production wiring passes time.Now.
func NewEligibility(policy config.Policy, now func() time.Time) *Eligibility {
	return &Eligibility{
		status: policy.AmendableStatus,
		window: policy.TimeToEdit,
		now:    now,
	}
}

// CanBeModified reports whether the customer may replace the order:
// it must belong to a registered customer, sit in the amendable status,
// still be inside the edit window, have a positive total and not itself be
// the replacement of another order.
func (e *Eligibility) CanBeModified(o entities.Order) bool {
	return o.CustomerID != 0 &&
		o.HasStatus(e.status) &&
		e.InTimeWindow(o) &&
		o.Total.IsPositive() &&
		!o.IsAmendment()
}

// InTimeWindow reports whether the order is still inside the edit window.
func (e *Eligibility) InTimeWindow(o entities.Order) bool {
	return e.now().Sub(o.CreatedAt) < e.window
}

// TimeLeft returns how long the order stays editable, clamped at zero.
// Feeds the countdown shown to the customer, it carries no authority.
func (e *Eligibility) TimeLeft(o entities.Order) time.Duration {
	left := e.window - e.now().Sub(o.CreatedAt)
	if left < 0 {
		return 0
	}
	return left
}

package handler

import (
	"time"

	"order-amendment-service/internal/entities"
	"order-amendment-service/internal/service"

	"github.com/shopspring/decimal"
)

// Order строка в списке заказов покупателя
type Order struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Total       string    `json:"total"`
	Editable    bool      `json:"editable"`
	SecondsLeft int       `json:"seconds_left,omitempty"`
	EditToken   string    `json:"edit_token,omitempty"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

type BeginEditRequest struct {
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	Token      string `json:"token" validate:"required,uuid4"`
}

// EditSession активная сессия редактирования заказа
type EditSession struct {
	OrderID     int64  `json:"order_id"`
	Credit      string `json:"credit"`
	SecondsLeft int    `json:"seconds_left"`
	Conditions  string `json:"conditions,omitempty"`
}

type FeeLine struct {
	Name   string `json:"name" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

type Cart struct {
	Total string    `json:"total" validate:"required"`
	Fees  []FeeLine `json:"fees,omitempty" validate:"omitempty,dive"`
}

type CartAdjustment struct {
	Cart          Cart   `json:"cart"`
	Payable       string `json:"payable"`
	RefundPreview string `json:"refund_preview,omitempty"`
}

// OrderPlacedEvent событие оформления заказа из топика платформы
type OrderPlacedEvent struct {
	OrderID   int64  `json:"order_id" validate:"required,gt=0"`
	SessionID string `json:"session_id" validate:"required"`
}

func SummaryEntityToJSON(s service.OrderSummary) Order {
	return Order{
		ID:          s.Order.ID,
		Status:      s.Order.Status,
		CreatedAt:   s.Order.CreatedAt,
		Total:       s.Order.Total.StringFixed(2),
		Editable:    s.Editable,
		SecondsLeft: s.SecondsLeft,
		EditToken:   s.EditToken,
	}
}

func OverviewEntityToJSON(o service.EditOverview) EditSession {
	return EditSession{
		OrderID:     o.OrderID,
		Credit:      o.Credit.StringFixed(2),
		SecondsLeft: o.SecondsLeft,
		Conditions:  o.Conditions,
	}
}

func CartJSONToEntity(c Cart) (entities.Cart, error) {
	total, err := decimal.NewFromString(c.Total)
	if err != nil {
		return entities.Cart{}, err
	}

	cart := entities.Cart{Total: total}
	for _, fee := range c.Fees {
		amount, err := decimal.NewFromString(fee.Amount)
		if err != nil {
			return entities.Cart{}, err
		}
		cart.Fees = append(cart.Fees, entities.FeeLine{Name: fee.Name, Amount: amount})
	}
	return cart, nil
}

func CartEntityToJSON(c entities.Cart) Cart {
	cart := Cart{Total: c.Total.StringFixed(2)}
	for _, fee := range c.Fees {
		cart.Fees = append(cart.Fees, FeeLine{Name: fee.Name, Amount: fee.Amount.StringFixed(2)})
	}
	return cart
}

func AdjustmentEntityToJSON(a service.CartAdjustment) CartAdjustment {
	adjustment := CartAdjustment{
		Cart:    CartEntityToJSON(a.Cart),
		Payable: a.Cart.Payable().StringFixed(2),
	}
	if a.RefundPreview.IsPositive() {
		adjustment.RefundPreview = a.RefundPreview.StringFixed(2)
	}
	return adjustment
}

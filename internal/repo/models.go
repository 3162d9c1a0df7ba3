package repo

import (
	"database/sql"
	"strconv"
	"time"

	"order-amendment-service/internal/entities"

	"github.com/shopspring/decimal"
)

// Meta keys carrying the supersession link between an amendment pair.
const (
	MetaAmendedFrom = "_amended_from"
	MetaAmendedBy   = "_amended_by"
)

type Order struct {
	ID            int64           `db:"id"`
	Status        string          `db:"status"`
	CustomerID    sql.NullInt64   `db:"customer_id"`
	CreatedAt     time.Time       `db:"created_at"`
	Total         decimal.Decimal `db:"total"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	ShippingTotal decimal.Decimal `db:"shipping_total"`
	DiscountTotal decimal.Decimal `db:"discount_total"`
}

type Item struct {
	ID        int64           `db:"id"`
	OrderID   int64           `db:"order_id"`
	ProductID int64           `db:"product_id"`
	Name      sql.NullString  `db:"name"`
	Quantity  int             `db:"quantity"`
	LineTotal decimal.Decimal `db:"line_total"`
}

type ItemTax struct {
	ItemID int64           `db:"item_id"`
	RateID string          `db:"rate_id"`
	Total  decimal.Decimal `db:"total"`
}

type Meta struct {
	OrderID int64  `db:"order_id"`
	Key     string `db:"meta_key"`
	Value   string `db:"meta_value"`
}

func ItemToEntity(i Item, taxes []ItemTax) entities.LineItem {
	item := entities.LineItem{
		ID:        i.ID,
		ProductID: i.ProductID,
		Name:      nullStringToString(i.Name),
		Quantity:  i.Quantity,
		LineTotal: i.LineTotal,
	}

	if len(taxes) > 0 {
		item.Taxes = make(map[string]decimal.Decimal, len(taxes))
		for _, tax := range taxes {
			item.Taxes[tax.RateID] = tax.Total
		}
	}

	return item
}

func OrderToEntity(o Order, items []Item, taxes map[int64][]ItemTax, meta []Meta) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		Status:        o.Status,
		CustomerID:    nullInt64ToInt64(o.CustomerID),
		CreatedAt:     o.CreatedAt,
		Total:         o.Total,
		Subtotal:      o.Subtotal,
		ShippingTotal: o.ShippingTotal,
		DiscountTotal: o.DiscountTotal,
	}

	for _, m := range meta {
		switch m.Key {
		case MetaAmendedFrom:
			order.Supersedes = parseOrderID(m.Value)
		case MetaAmendedBy:
			order.SupersededBy = parseOrderID(m.Value)
		}
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it, taxes[it.ID]))
		}
	}

	return order
}

func parseOrderID(value string) int64 {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt64ToInt64(ni sql.NullInt64) int64 {
	if ni.Valid {
		return ni.Int64
	}
	return 0
}

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"order-amendment-service/internal/entities"
	"order-amendment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// PaymentGateway refunds money through the provider that captured the
// original payment.
type PaymentGateway interface {
	Refund(ctx context.Context, orderID int64, amount decimal.Decimal) error
}

type postgresRepo struct {
	db      *sqlx.DB
	gateway PaymentGateway
	qb      sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB, gateway PaymentGateway) *postgresRepo {
	return &postgresRepo{
		db:      db,
		gateway: gateway,
		qb:      sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "status", "customer_id", "created_at",
		"total", "subtotal", "shipping_total", "discount_total").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, taxes, err := r.orderItems(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	meta, err := r.orderMeta(ctx, []int64{orderID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items, taxes, meta[orderID]), nil
}

// ListOrdersByCustomer returns the customer's orders newest first, with
// supersession meta loaded. Line items are not needed for the list surface
// and are left empty.
func (r *postgresRepo) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"id", "status", "customer_id", "created_at",
		"total", "subtotal", "shipping_total", "discount_total").
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	meta, err := r.orderMeta(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, nil, nil, meta[order.ID]))
	}

	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	query, args := r.qb.Update("orders").
		Set("status", status).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (r *postgresRepo) AddNote(ctx context.Context, orderID int64, note string) error {
	query, args := r.qb.Insert("order_notes").
		Columns("order_id", "note", "created_at").
		Values(orderID, note, sq.Expr("now()")).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add order note: %w", err)
	}
	return nil
}

func (r *postgresRepo) SetMeta(ctx context.Context, orderID int64, key, value string) error {
	query, args := r.qb.Insert("order_meta").
		Columns("order_id", "meta_key", "meta_value").
		Values(orderID, key, value).
		Suffix("ON CONFLICT (order_id, meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set order meta: %w", err)
	}
	return nil
}

// CreateRefund records the refund, restocks the superseded items and, when
// requested, pushes the money back through the payment gateway. Callers run
// it inside a transaction so a gateway refusal rolls back the bookkeeping.
func (r *postgresRepo) CreateRefund(ctx context.Context, req entities.RefundRequest) error {
	query, args := r.qb.Insert("refunds").
		Columns("order_id", "amount", "reason", "created_at").
		Values(req.OrderID, req.Amount, req.Reason, sq.Expr("now()")).
		Suffix("RETURNING id").
		MustSql()

	var refundID int64
	if err := r.getContext(ctx, &refundID, query, args...); err != nil {
		return fmt.Errorf("failed to create refund: %w", err)
	}

	if len(req.LineItems) > 0 {
		q := r.qb.Insert("refund_items").
			Columns("refund_id", "item_id", "quantity", "refund_total", "refund_tax_total")

		for _, li := range req.LineItems {
			q = q.Values(refundID, li.ItemID, li.Quantity, li.RefundTotal, sumTaxes(li.RefundTax))
		}

		query, args := q.MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create refund items: %w", err)
		}
	}

	if req.RestockItems {
		if err := r.restock(ctx, req.LineItems); err != nil {
			return err
		}
	}

	if req.RefundPayment {
		if err := r.gateway.Refund(ctx, req.OrderID, req.Amount); err != nil {
			return fmt.Errorf("failed to refund payment: %w", err)
		}
	}

	return nil
}

func (r *postgresRepo) restock(ctx context.Context, lineItems []entities.RefundLineItem) error {
	if len(lineItems) == 0 {
		return nil
	}

	ids := make([]int64, len(lineItems))
	for i, li := range lineItems {
		ids[i] = li.ItemID
	}

	query, args := r.qb.Select("id", "order_id", "product_id", "name", "quantity", "line_total").
		From("order_items").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return fmt.Errorf("failed to select items for restock: %w", err)
	}

	products := make(map[int64]int64, len(items))
	for _, item := range items {
		products[item.ID] = item.ProductID
	}

	for _, li := range lineItems {
		productID, ok := products[li.ItemID]
		if !ok {
			return fmt.Errorf("order item %d not found for restock", li.ItemID)
		}

		query, args := r.qb.Update("products").
			Set("stock_quantity", sq.Expr("stock_quantity + ?", li.Quantity)).
			Where(sq.Eq{"id": productID}).
			MustSql()

		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to restock product %d: %w", productID, err)
		}
	}

	return nil
}

func (r *postgresRepo) orderItems(ctx context.Context, orderID int64) ([]Item, map[int64][]ItemTax, error) {
	query, args := r.qb.Select("id", "order_id", "product_id", "name", "quantity", "line_total").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, nil, fmt.Errorf("failed to select items: %w", err)
	}

	if len(items) == 0 {
		return nil, nil, nil
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	query, args = r.qb.Select("item_id", "rate_id", "total").
		From("order_item_taxes").
		Where(sq.Eq{"item_id": ids}).
		MustSql()

	var taxes []ItemTax
	if err := r.selectContext(ctx, &taxes, query, args...); err != nil {
		return nil, nil, fmt.Errorf("failed to select item taxes: %w", err)
	}

	taxMap := make(map[int64][]ItemTax, len(items))
	for _, tax := range taxes {
		taxMap[tax.ItemID] = append(taxMap[tax.ItemID], tax)
	}

	return items, taxMap, nil
}

func (r *postgresRepo) orderMeta(ctx context.Context, orderIDs []int64) (map[int64][]Meta, error) {
	query, args := r.qb.Select("order_id", "meta_key", "meta_value").
		From("order_meta").
		Where(sq.Eq{"order_id": orderIDs, "meta_key": []string{MetaAmendedFrom, MetaAmendedBy}}).
		MustSql()

	var meta []Meta
	if err := r.selectContext(ctx, &meta, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order meta: %w", err)
	}

	metaMap := make(map[int64][]Meta, len(orderIDs))
	for _, m := range meta {
		metaMap[m.OrderID] = append(metaMap[m.OrderID], m)
	}

	return metaMap, nil
}

// FormatOrderID renders an order id the way meta values store it.
func FormatOrderID(orderID int64) string {
	return strconv.FormatInt(orderID, 10)
}

func sumTaxes(taxes map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range taxes {
		total = total.Add(amount)
	}
	return total
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}

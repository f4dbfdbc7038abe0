package repo

import (
	"context"
	"fmt"

	"github.com/craftmarket/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type OrderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{base: newBase(db)}
}

var orderColumns = []string{
	"id", "customer_id",
	"customer_name", "customer_phone", "customer_email",
	"recipient_name", "recipient_phone", "recipient_city", "recipient_address",
	"items_cost", "discount_value", "total_cost",
	"tracking_number", "shipment_status", "shipment_status_description", "estimated_delivery",
	"payment_method_id", "payment_type", "is_paid",
	"status", "manager_id", "stock_consumed", "photos",
	"created_at",
}

func orderValues(o entities.Order) []any {
	return []any{
		o.ID, o.CustomerID,
		o.CustomerContact.Name, o.CustomerContact.Phone, nullString(o.CustomerContact.Email),
		o.RecipientContact.Name, o.RecipientContact.Phone,
		nullString(o.RecipientContact.City), nullString(o.RecipientContact.Address),
		o.Prices.ItemsCost, o.Prices.DiscountValue, o.Prices.TotalCost,
		nullString(o.Shipment.TrackingNumber), nullString(string(o.Shipment.Status)),
		nullString(o.Shipment.StatusDescription), nullTime(o.Shipment.EstimatedDelivery),
		o.Payment.MethodID, string(o.Payment.Type), o.Payment.IsPaid,
		string(o.Status), nullString(o.ManagerID), o.StockConsumed, pq.StringArray(o.Photos),
		o.CreatedAt,
	}
}

// GetOrderByID loads the full aggregate: order row, items, audit log.
// Inside a transaction the order row is locked FOR UPDATE, serializing
// concurrent read-modify-write cycles on the same order.
func (r *OrderRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	qb := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})
	if trmHasTx(ctx) {
		qb = qb.Suffix("FOR UPDATE")
	}
	query, args := qb.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if isNoRows(err) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsByOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	logs, err := r.logsByOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, items, logs), nil
}

func (r *OrderRepo) itemsByOrder(ctx context.Context, id int64) ([]OrderItem, error) {
	query, args := r.qb.Select(
		"order_id", "sku", "product_id", "variant_id",
		"qty", "price", "cost", "services", "is_packed").
		From("order_items").
		Where(sq.Eq{"order_id": id}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	return items, nil
}

func (r *OrderRepo) logsByOrder(ctx context.Context, id int64) ([]OrderLog, error) {
	query, args := r.qb.Select("order_id", "time", "text").
		From("order_logs").
		Where(sq.Eq{"order_id": id}).
		OrderBy("time ASC", "id ASC").
		MustSql()

	var logs []OrderLog
	if err := r.selectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order logs: %w", err)
	}
	return logs, nil
}

func (r *OrderRepo) InsertOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(orderValues(o)...).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if err := r.insertItems(ctx, o.ID, o.Items); err != nil {
		return err
	}
	return r.AppendLogs(ctx, o.ID, o.Logs)
}

// UpdateOrder rewrites the order row and replaces its item set. The
// audit log is append-only and untouched here; new entries go through
// AppendLogs.
func (r *OrderRepo) UpdateOrder(ctx context.Context, o entities.Order) error {
	qb := r.qb.Update("orders").Where(sq.Eq{"id": o.ID})
	values := orderValues(o)
	for i, col := range orderColumns {
		if col == "id" || col == "created_at" {
			continue
		}
		qb = qb.Set(col, values[i])
	}
	query, args := qb.MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entities.ErrOrderNotFound
	}

	query, args = r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": o.ID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear order items: %w", err)
	}
	return r.insertItems(ctx, o.ID, o.Items)
}

func (r *OrderRepo) insertItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "sku", "product_id", "variant_id",
			"qty", "price", "cost", "services", "is_packed")
	for _, it := range items {
		m := ItemFromEntity(orderID, it)
		q = q.Values(m.OrderID, m.SKU, m.ProductID, m.VariantID,
			m.Qty, m.Price, m.Cost, m.Services, m.IsPacked)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *OrderRepo) AppendLogs(ctx context.Context, orderID int64, logs []entities.LogEntry) error {
	if len(logs) == 0 {
		return nil
	}

	q := r.qb.Insert("order_logs").Columns("order_id", "time", "text")
	for _, l := range logs {
		q = q.Values(orderID, l.Time, l.Text)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append order logs: %w", err)
	}
	return nil
}

func (r *OrderRepo) DeleteOrder(ctx context.Context, id int64) error {
	for _, table := range []string{"order_items", "order_logs"} {
		query, args := r.qb.Delete(table).
			Where(sq.Eq{"order_id": id}).
			MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": id}).
		MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

type activeShipment struct {
	OrderID        int64  `db:"id"`
	TrackingNumber string `db:"tracking_number"`
	ShipmentStatus string `db:"shipment_status"`
}

// ListActiveShipments returns orders with a tracking number and a
// non-terminal status.
func (r *OrderRepo) ListActiveShipments(ctx context.Context, limit int) ([]entities.ShipmentRef, error) {
	statuses := entities.NonTerminalStatuses()
	strs := make([]string, len(statuses))
	for i, s := range statuses {
		strs[i] = string(s)
	}

	query, args := r.qb.Select("id", "tracking_number", "COALESCE(shipment_status, '') AS shipment_status").
		From("orders").
		Where(sq.NotEq{"tracking_number": nil}).
		Where(sq.NotEq{"tracking_number": ""}).
		Where(sq.Eq{"status": strs}).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		MustSql()

	var shipments []activeShipment
	if err := r.selectContext(ctx, &shipments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select active shipments: %w", err)
	}

	refs := make([]entities.ShipmentRef, 0, len(shipments))
	for _, s := range shipments {
		refs = append(refs, entities.ShipmentRef{
			OrderID:        s.OrderID,
			TrackingNumber: s.TrackingNumber,
			Status:         entities.ShipmentStatus(s.ShipmentStatus),
		})
	}
	return refs, nil
}

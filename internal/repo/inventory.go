package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craftmarket/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// InventoryRepo is the stock ledger. Stock is held in three pools: the
// free counter on the inventory row, soft reservations in
// inventory_carted and hard reservations in inventory_ordered.
//
// Every decrement of the free pool is a single conditional UPDATE
// guarded by available_qty >= qty and checked via RowsAffected, never a
// read-then-write, so availableQty cannot go negative under concurrent
// checkouts. Multi-statement operations are expected to run on the
// caller's transaction (trm context).
type InventoryRepo struct {
	base
}

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo {
	return &InventoryRepo{base: newBase(db)}
}

// takeStock conditionally moves qty out of the free pool.
func (r *InventoryRepo) takeStock(ctx context.Context, sku string, qty int) error {
	query, args := r.qb.Update("inventory").
		Set("available_qty", sq.Expr("available_qty - ?", qty)).
		Where(sq.Eq{"sku": sku}).
		Where(sq.GtOrEq{"available_qty": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to take stock for %s: %w", sku, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		exists, err := r.skuExists(ctx, sku)
		if err != nil {
			return err
		}
		if !exists {
			return entities.ErrSKUNotFound
		}
		return entities.ErrInsufficientStock
	}
	return nil
}

func (r *InventoryRepo) returnStock(ctx context.Context, sku string, qty int) error {
	query, args := r.qb.Update("inventory").
		Set("available_qty", sq.Expr("available_qty + ?", qty)).
		Where(sq.Eq{"sku": sku}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to return stock for %s: %w", sku, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entities.ErrSKUNotFound
	}
	return nil
}

func (r *InventoryRepo) skuExists(ctx context.Context, sku string) (bool, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("inventory").
		Where(sq.Eq{"sku": sku}).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check sku %s: %w", sku, err)
	}
	return count > 0, nil
}

// ReserveForCart places a soft reservation: decrements the free pool and
// records a carted entry for the cart.
func (r *InventoryRepo) ReserveForCart(ctx context.Context, sku string, qty int, cartID string) error {
	if err := r.takeStock(ctx, sku, qty); err != nil {
		return err
	}

	query, args := r.qb.Insert("inventory_carted").
		Columns("sku", "cart_id", "qty", "created_at").
		Values(sku, cartID, qty, time.Now()).
		Suffix("ON CONFLICT (sku, cart_id) DO UPDATE SET qty = inventory_carted.qty + EXCLUDED.qty").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record carted reservation: %w", err)
	}
	return nil
}

// ChangeCartedQty adjusts an existing soft reservation to newQty. An
// increase is guarded by the free pool; a shrinking cart returns the
// difference. oldQty is what the caller last observed in the cart.
func (r *InventoryRepo) ChangeCartedQty(ctx context.Context, sku, cartID string, newQty, oldQty int) error {
	delta := newQty - oldQty
	switch {
	case delta > 0:
		if err := r.takeStock(ctx, sku, delta); err != nil {
			if errors.Is(err, entities.ErrInsufficientStock) {
				return entities.ErrConflict
			}
			return err
		}
	case delta < 0:
		if err := r.returnStock(ctx, sku, -delta); err != nil {
			return err
		}
	}

	query, args := r.qb.Update("inventory_carted").
		Set("qty", newQty).
		Where(sq.Eq{"sku": sku, "cart_id": cartID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update carted reservation: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Stock already moved; the surrounding tx must roll back.
		return entities.ErrConflict
	}
	return nil
}

// ReleaseFromCart drops the soft reservation and puts its quantity back
// into the free pool. Releasing a cart that holds nothing is a no-op.
func (r *InventoryRepo) ReleaseFromCart(ctx context.Context, sku, cartID string) error {
	query, args := r.qb.Delete("inventory_carted").
		Where(sq.Eq{"sku": sku, "cart_id": cartID}).
		Suffix("RETURNING qty").
		MustSql()

	var qty int
	err := r.getContext(ctx, &qty, query, args...)
	if isNoRows(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to release carted reservation: %w", err)
	}
	return r.returnStock(ctx, sku, qty)
}

// ReserveForOrder places a hard reservation against the free pool. A
// soft reservation is not a precondition: checkout may bypass the cart
// entirely, and when it does come from a cart the service releases the
// carted entry first.
func (r *InventoryRepo) ReserveForOrder(ctx context.Context, sku string, qty int, orderID int64) error {
	if err := r.takeStock(ctx, sku, qty); err != nil {
		return err
	}

	query, args := r.qb.Insert("inventory_ordered").
		Columns("sku", "order_id", "qty").
		Values(sku, orderID, qty).
		Suffix("ON CONFLICT (sku, order_id) DO UPDATE SET qty = inventory_ordered.qty + EXCLUDED.qty").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record ordered reservation: %w", err)
	}
	return nil
}

// ReleaseFromOrder removes the hard reservation entry without touching
// the free pool. Callers that want the quantity back pair it with
// AddToStock.
func (r *InventoryRepo) ReleaseFromOrder(ctx context.Context, sku string, orderID int64) error {
	query, args := r.qb.Delete("inventory_ordered").
		Where(sq.Eq{"sku": sku, "order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to release ordered reservation: %w", err)
	}
	return nil
}

// ConsumeOrdered drops every hard reservation of the order without
// restoring stock: the goods physically left the warehouse.
func (r *InventoryRepo) ConsumeOrdered(ctx context.Context, orderID int64) error {
	query, args := r.qb.Delete("inventory_ordered").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to consume ordered reservations: %w", err)
	}
	return nil
}

// ReturnOrderedToStock drops every hard reservation of the order and
// returns the quantities to the free pool. Used on cancel.
func (r *InventoryRepo) ReturnOrderedToStock(ctx context.Context, orderID int64) error {
	query, args := r.qb.Delete("inventory_ordered").
		Where(sq.Eq{"order_id": orderID}).
		Suffix("RETURNING sku, qty").
		MustSql()

	var released []OrderReservation
	if err := r.selectContext(ctx, &released, query, args...); err != nil {
		return fmt.Errorf("failed to release ordered reservations: %w", err)
	}
	for _, res := range released {
		if err := r.returnStock(ctx, res.SKU, res.Qty); err != nil {
			return err
		}
	}
	return nil
}

// AddToStock puts qty back into the free pool. Used on returns and when
// an edit re-reserves a changed item set.
func (r *InventoryRepo) AddToStock(ctx context.Context, sku string, qty int) error {
	return r.returnStock(ctx, sku, qty)
}

// SetTotalStock is the admin override: qty is the new total stock of
// the SKU. The free pool becomes qty minus everything already promised
// to carts and orders; promising more than qty is a conflict.
func (r *InventoryRepo) SetTotalStock(ctx context.Context, sku string, qty int) error {
	const query = `
		UPDATE inventory i SET available_qty = $2 - r.reserved
		FROM (
			SELECT COALESCE((SELECT SUM(qty) FROM inventory_carted WHERE sku = $1), 0)
			     + COALESCE((SELECT SUM(qty) FROM inventory_ordered WHERE sku = $1), 0) AS reserved
		) r
		WHERE i.sku = $1 AND $2 >= r.reserved`

	res, err := r.execContext(ctx, query, sku, qty)
	if err != nil {
		return fmt.Errorf("failed to set available qty for %s: %w", sku, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		exists, err := r.skuExists(ctx, sku)
		if err != nil {
			return err
		}
		if !exists {
			return entities.ErrSKUNotFound
		}
		return entities.ErrConflict
	}
	return nil
}

// GetRecord loads the full ledger entry with both reservation pools.
func (r *InventoryRepo) GetRecord(ctx context.Context, sku string) (entities.InventoryRecord, error) {
	query, args := r.qb.Select("sku", "available_qty").
		From("inventory").
		Where(sq.Eq{"sku": sku}).
		MustSql()

	var rec InventoryRecord
	err := r.getContext(ctx, &rec, query, args...)
	if isNoRows(err) {
		return entities.InventoryRecord{}, entities.ErrSKUNotFound
	}
	if err != nil {
		return entities.InventoryRecord{}, fmt.Errorf("failed to get inventory record: %w", err)
	}

	query, args = r.qb.Select("sku", "cart_id", "qty", "created_at").
		From("inventory_carted").
		Where(sq.Eq{"sku": sku}).
		MustSql()

	var carted []CartedReservation
	if err := r.selectContext(ctx, &carted, query, args...); err != nil {
		return entities.InventoryRecord{}, fmt.Errorf("failed to get carted reservations: %w", err)
	}

	query, args = r.qb.Select("sku", "order_id", "qty").
		From("inventory_ordered").
		Where(sq.Eq{"sku": sku}).
		MustSql()

	var ordered []OrderReservation
	if err := r.selectContext(ctx, &ordered, query, args...); err != nil {
		return entities.InventoryRecord{}, fmt.Errorf("failed to get ordered reservations: %w", err)
	}

	result := entities.InventoryRecord{
		SKU:          rec.SKU,
		AvailableQty: rec.AvailableQty,
	}
	for _, c := range carted {
		result.Carted = append(result.Carted, entities.CartedReservation{
			Qty: c.Qty, CartID: c.CartID, CreatedAt: c.CreatedAt,
		})
	}
	for _, o := range ordered {
		result.Ordered = append(result.Ordered, entities.OrderReservation{
			Qty: o.Qty, OrderID: o.OrderID,
		})
	}
	return result, nil
}

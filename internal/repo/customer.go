package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craftmarket/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct {
	base
}

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo {
	return &CustomerRepo{base: newBase(db)}
}

// GetOrCreateByPhone resolves a customer by phone number, creating one
// with a fresh cart id when unknown. Customers are keyed by phone: the
// storefront has no accounts for guest checkout.
func (r *CustomerRepo) GetOrCreateByPhone(ctx context.Context, contact entities.ContactInfo) (entities.Customer, error) {
	customer, err := r.getByPhone(ctx, contact.Phone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, entities.ErrCustomerNotFound) {
		return entities.Customer{}, err
	}

	query, args := r.qb.Insert("customers").
		Columns("cart_id", "name", "phone", "email", "city", "address", "total_orders_cost").
		Values(uuid.NewString(), contact.Name, contact.Phone,
			nullString(contact.Email), nullString(contact.City), nullString(contact.Address), 0).
		Suffix("ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return entities.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *CustomerRepo) getByPhone(ctx context.Context, phone string) (entities.Customer, error) {
	query, args := r.qb.Select("id", "cart_id", "name", "phone", "email", "city", "address", "total_orders_cost").
		From("customers").
		Where(sq.Eq{"phone": phone}).
		MustSql()

	var customer Customer
	err := r.getContext(ctx, &customer, query, args...)
	if isNoRows(err) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return r.withCart(ctx, customer)
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (entities.Customer, error) {
	query, args := r.qb.Select("id", "cart_id", "name", "phone", "email", "city", "address", "total_orders_cost").
		From("customers").
		Where(sq.Eq{"id": id}).
		MustSql()

	var customer Customer
	err := r.getContext(ctx, &customer, query, args...)
	if isNoRows(err) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return r.withCart(ctx, customer)
}

func (r *CustomerRepo) withCart(ctx context.Context, customer Customer) (entities.Customer, error) {
	query, args := r.qb.Select("customer_id", "sku", "variant_id", "qty", "added_at").
		From("customer_cart").
		Where(sq.Eq{"customer_id": customer.ID}).
		OrderBy("added_at ASC").
		MustSql()

	var cart []CartItem
	if err := r.selectContext(ctx, &cart, query, args...); err != nil {
		return entities.Customer{}, fmt.Errorf("failed to select cart: %w", err)
	}
	return CustomerToEntity(customer, cart), nil
}

// IncrementTotalOrdersCost bumps the customer's lifetime spend, done
// once per finished order inside the order's transaction.
func (r *CustomerRepo) IncrementTotalOrdersCost(ctx context.Context, id int64, amount int) error {
	query, args := r.qb.Update("customers").
		Set("total_orders_cost", sq.Expr("total_orders_cost + ?", amount)).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment total orders cost: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entities.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepo) UpsertCartItem(ctx context.Context, customerID int64, item entities.CartItem) error {
	query, args := r.qb.Insert("customer_cart").
		Columns("customer_id", "sku", "variant_id", "qty", "added_at").
		Values(customerID, item.SKU, item.VariantID, item.Qty, time.Now()).
		Suffix("ON CONFLICT (customer_id, sku) DO UPDATE SET qty = EXCLUDED.qty").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return nil
}

func (r *CustomerRepo) DeleteCartItem(ctx context.Context, customerID int64, sku string) error {
	query, args := r.qb.Delete("customer_cart").
		Where(sq.Eq{"customer_id": customerID, "sku": sku}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

func (r *CustomerRepo) ClearCart(ctx context.Context, customerID int64) error {
	query, args := r.qb.Delete("customer_cart").
		Where(sq.Eq{"customer_id": customerID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

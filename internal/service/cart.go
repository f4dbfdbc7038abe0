package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/craftmarket/order-service/internal/entities"
	"github.com/craftmarket/order-service/pkg/trm"
)

// countCartRejection records ledger refusals of a soft reservation. A
// quantity change over the carted pool reports shortage as a conflict,
// so both sentinels count.
func countCartRejection(err error) {
	if errors.Is(err, entities.ErrInsufficientStock) || errors.Is(err, entities.ErrConflict) {
		reservationRejected.WithLabelValues("cart").Inc()
	}
}

// CartService keeps the customer's embedded cart and the ledger's
// soft-reservation pool consistent: every cart mutation pairs a cart row
// change with the matching carted-reservation change in one transaction.
type CartService struct {
	logger    *slog.Logger
	txManager trm.Manager
	customers CustomerRepo
	ledger    InventoryLedger
	catalog   Catalog
}

func NewCartService(
	logger *slog.Logger,
	txManager trm.Manager,
	customers CustomerRepo,
	ledger InventoryLedger,
	catalog Catalog,
) *CartService {
	return &CartService{
		logger:    logger.With(slog.String("service", "cart")),
		txManager: txManager,
		customers: customers,
		ledger:    ledger,
		catalog:   catalog,
	}
}

// AddToCart soft-reserves qty of sku for the customer's cart. Adding a
// SKU already in the cart grows its reservation.
func (s *CartService) AddToCart(ctx context.Context, customerID int64, sku string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: qty must be positive", entities.ErrConflict)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		customer, err := s.customers.GetByID(ctx, customerID)
		if err != nil {
			return err
		}

		variant, err := s.resolveVariant(ctx, sku)
		if err != nil {
			return err
		}

		existing, inCart := customer.CartItemBySKU(sku)
		newQty := qty
		if inCart {
			newQty = existing.Qty + qty
			if err := s.ledger.ChangeCartedQty(ctx, sku, customer.CartID, newQty, existing.Qty); err != nil {
				countCartRejection(err)
				return err
			}
		} else {
			if err := s.ledger.ReserveForCart(ctx, sku, qty, customer.CartID); err != nil {
				countCartRejection(err)
				return err
			}
		}

		return s.customers.UpsertCartItem(ctx, customerID, entities.CartItem{
			SKU:       sku,
			VariantID: variant.ID,
			Qty:       newQty,
		})
	})
}

// ChangeQty adjusts the cart line to newQty; zero removes it.
func (s *CartService) ChangeQty(ctx context.Context, customerID int64, sku string, newQty int) error {
	if newQty == 0 {
		return s.RemoveFromCart(ctx, customerID, sku)
	}
	if newQty < 0 {
		return fmt.Errorf("%w: qty must not be negative", entities.ErrConflict)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		customer, err := s.customers.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		existing, inCart := customer.CartItemBySKU(sku)
		if !inCart {
			return fmt.Errorf("%w: %s not in cart", entities.ErrVariantNotFound, sku)
		}

		if err := s.ledger.ChangeCartedQty(ctx, sku, customer.CartID, newQty, existing.Qty); err != nil {
			countCartRejection(err)
			return err
		}
		return s.customers.UpsertCartItem(ctx, customerID, entities.CartItem{
			SKU:       sku,
			VariantID: existing.VariantID,
			Qty:       newQty,
		})
	})
}

// RemoveFromCart releases the soft reservation and drops the cart line.
func (s *CartService) RemoveFromCart(ctx context.Context, customerID int64, sku string) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		customer, err := s.customers.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if err := s.ledger.ReleaseFromCart(ctx, sku, customer.CartID); err != nil {
			return err
		}
		return s.customers.DeleteCartItem(ctx, customerID, sku)
	})
}

// ClearCart empties the cart, releasing every soft reservation it held.
func (s *CartService) ClearCart(ctx context.Context, customerID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		customer, err := s.customers.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		for _, it := range customer.Cart {
			if err := s.ledger.ReleaseFromCart(ctx, it.SKU, customer.CartID); err != nil {
				return err
			}
		}
		return s.customers.ClearCart(ctx, customerID)
	})
}

func (s *CartService) resolveVariant(ctx context.Context, sku string) (entities.Variant, error) {
	products, err := s.catalog.GetProductsBySKUs(ctx, []string{sku})
	if err != nil {
		return entities.Variant{}, fmt.Errorf("failed to resolve variant: %w", err)
	}
	for _, p := range products {
		if v, ok := p.VariantBySKU(sku); ok {
			return v, nil
		}
	}
	return entities.Variant{}, fmt.Errorf("%w: %s", entities.ErrVariantNotFound, sku)
}

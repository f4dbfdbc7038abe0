package repo

import (
	"context"
	"fmt"

	"github.com/craftmarket/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// CatalogRepo is the read side of the product catalog: order creation
// validates requested SKUs against it. Catalog CRUD lives elsewhere.
type CatalogRepo struct {
	base
}

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo {
	return &CatalogRepo{base: newBase(db)}
}

// GetProductsBySKUs resolves the products owning the given SKUs, each
// carrying only the variants that matched.
func (r *CatalogRepo) GetProductsBySKUs(ctx context.Context, skus []string) ([]entities.Product, error) {
	if len(skus) == 0 {
		return nil, nil
	}

	query, args := r.qb.Select("id", "product_id", "sku", "price", "cost").
		From("product_variants").
		Where(sq.Eq{"sku": skus}).
		MustSql()

	var variants []Variant
	if err := r.selectContext(ctx, &variants, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select variants: %w", err)
	}
	if len(variants) == 0 {
		return []entities.Product{}, nil
	}

	productIDs := make([]int64, 0, len(variants))
	variantsByProduct := make(map[int64][]Variant, len(variants))
	for _, v := range variants {
		if _, seen := variantsByProduct[v.ProductID]; !seen {
			productIDs = append(productIDs, v.ProductID)
		}
		variantsByProduct[v.ProductID] = append(variantsByProduct[v.ProductID], v)
	}

	query, args = r.qb.Select("id", "name", "category_id").
		From("products").
		Where(sq.Eq{"id": productIDs}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		product := entities.Product{
			ID:         p.ID,
			Name:       p.Name,
			CategoryID: p.CategoryID,
		}
		for _, v := range variantsByProduct[p.ID] {
			product.Variants = append(product.Variants, entities.Variant{
				ID:        v.ID,
				ProductID: v.ProductID,
				SKU:       v.SKU,
				Price:     v.Price,
				Cost:      v.Cost,
			})
		}
		result = append(result, product)
	}
	return result, nil
}

// IncrementSalesCount bumps the variant's sales counter when its stock
// is consumed by a shipped order.
func (r *CatalogRepo) IncrementSalesCount(ctx context.Context, sku string, qty int) error {
	query, args := r.qb.Update("product_variants").
		Set("sales_count", sq.Expr("sales_count + ?", qty)).
		Where(sq.Eq{"sku": sku}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment sales count: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entities.ErrVariantNotFound
	}
	return nil
}

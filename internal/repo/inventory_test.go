package repo

import (
	"context"
	"testing"

	"github.com/craftmarket/order-service/internal/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryRepo(t *testing.T) (*InventoryRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewInventoryRepo(sqlx.NewDb(db, "sqlmock")), mock
}

const (
	takeStockQuery     = `UPDATE inventory SET available_qty = available_qty - \$1 WHERE sku = \$2 AND available_qty >= \$3`
	returnStockQuery   = `UPDATE inventory SET available_qty = available_qty \+ \$1 WHERE sku = \$2`
	skuExistsQuery     = `SELECT COUNT\(\*\) FROM inventory WHERE sku = \$1`
	insertOrderedQuery = `INSERT INTO inventory_ordered \(sku,order_id,qty\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(sku, order_id\) DO UPDATE SET qty = inventory_ordered\.qty \+ EXCLUDED\.qty`
	dropOrderedQuery   = `DELETE FROM inventory_ordered WHERE order_id = \$1 RETURNING sku, qty`
	setTotalStockQuery = `UPDATE inventory i SET available_qty = \$2 - r\.reserved`
)

func TestInventoryRepo_ReserveForOrder(t *testing.T) {
	t.Run("every unit leaving the free pool lands in the ordered pool", func(t *testing.T) {
		repo, mock := newInventoryRepo(t)

		mock.ExpectExec(takeStockQuery).
			WithArgs(3, "RING-S", 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertOrderedQuery).
			WithArgs("RING-S", int64(7), 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ReserveForOrder(context.Background(), "RING-S", 3, 7)
		require.NoError(t, err)
	})

	t.Run("insufficient stock rejects without touching the ledger", func(t *testing.T) {
		repo, mock := newInventoryRepo(t)

		// The guard lives in the statement itself: zero rows means the
		// free pool could not cover the quantity, and no other statement
		// runs after the rejection.
		mock.ExpectExec(takeStockQuery).
			WithArgs(5, "RING-S", 5).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(skuExistsQuery).
			WithArgs("RING-S").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.ReserveForOrder(context.Background(), "RING-S", 5, 7)
		assert.ErrorIs(t, err, entities.ErrInsufficientStock)
	})

	t.Run("unknown sku is reported as such, not as out of stock", func(t *testing.T) {
		repo, mock := newInventoryRepo(t)

		mock.ExpectExec(takeStockQuery).
			WithArgs(1, "NO-SUCH", 1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(skuExistsQuery).
			WithArgs("NO-SUCH").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.ReserveForOrder(context.Background(), "NO-SUCH", 1, 7)
		assert.ErrorIs(t, err, entities.ErrSKUNotFound)
	})
}

func TestInventoryRepo_ReturnOrderedToStock(t *testing.T) {
	t.Run("released reservations return unit for unit", func(t *testing.T) {
		repo, mock := newInventoryRepo(t)

		mock.ExpectQuery(dropOrderedQuery).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"sku", "qty"}).
				AddRow("RING-S", 2).
				AddRow("PNDT-G", 1))
		mock.ExpectExec(returnStockQuery).
			WithArgs(2, "RING-S").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(returnStockQuery).
			WithArgs(1, "PNDT-G").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ReturnOrderedToStock(context.Background(), 7)
		require.NoError(t, err)
	})

	t.Run("order without reservations is a no-op", func(t *testing.T) {
		repo, mock := newInventoryRepo(t)

		mock.ExpectQuery(dropOrderedQuery).
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"sku", "qty"}))

		err := repo.ReturnOrderedToStock(context.Background(), 8)
		require.NoError(t, err)
	})
}

func TestInventoryRepo_SetTotalStock(t *testing.T) {
	t.Run("free pool becomes total minus reserved", func(t *testing.T) {
		repo, mock := newInventoryRepo(t)

		mock.ExpectExec(setTotalStockQuery).
			WithArgs("RING-S", 20).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetTotalStock(context.Background(), "RING-S", 20)
		require.NoError(t, err)
	})

	t.Run("total below promised quantities is a conflict", func(t *testing.T) {
		repo, mock := newInventoryRepo(t)

		mock.ExpectExec(setTotalStockQuery).
			WithArgs("RING-S", 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(skuExistsQuery).
			WithArgs("RING-S").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.SetTotalStock(context.Background(), "RING-S", 2)
		assert.ErrorIs(t, err, entities.ErrConflict)
	})

	t.Run("unknown sku", func(t *testing.T) {
		repo, mock := newInventoryRepo(t)

		mock.ExpectExec(setTotalStockQuery).
			WithArgs("NO-SUCH", 10).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(skuExistsQuery).
			WithArgs("NO-SUCH").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.SetTotalStock(context.Background(), "NO-SUCH", 10)
		assert.ErrorIs(t, err, entities.ErrSKUNotFound)
	})
}

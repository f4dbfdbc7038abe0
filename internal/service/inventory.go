package service

import (
	"context"
	"log/slog"

	"github.com/craftmarket/order-service/internal/entities"
	"github.com/craftmarket/order-service/pkg/trm"
)

// InventoryService exposes the admin side of the stock ledger.
type InventoryService struct {
	logger    *slog.Logger
	txManager trm.Manager
	ledger    InventoryLedger
}

func NewInventoryService(logger *slog.Logger, txManager trm.Manager, ledger InventoryLedger) *InventoryService {
	return &InventoryService{
		logger:    logger.With(slog.String("service", "inventory")),
		txManager: txManager,
		ledger:    ledger,
	}
}

// SetTotalStock is the admin stock override. The ledger rejects totals
// below what is already promised to carts and orders.
func (s *InventoryService) SetTotalStock(ctx context.Context, sku string, qty int) error {
	if qty < 0 {
		return entities.ErrConflict
	}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.ledger.SetTotalStock(ctx, sku, qty)
	})
	if err != nil {
		return err
	}
	s.logger.Info("stock overridden", slog.String("sku", sku), slog.Int("qty", qty))
	return nil
}

func (s *InventoryService) GetRecord(ctx context.Context, sku string) (entities.InventoryRecord, error) {
	return s.ledger.GetRecord(ctx, sku)
}

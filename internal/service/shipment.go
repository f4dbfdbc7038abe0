package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/craftmarket/order-service/internal/carrier"
	"github.com/craftmarket/order-service/internal/entities"

	"golang.org/x/sync/errgroup"
)

// Orders is the narrow order-service surface the shipment sync needs.
type Orders interface {
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	UpdateOrderByID(ctx context.Context, id int64, fn func(ctx context.Context, o *entities.Order) error) (entities.Order, error)
	ApplyShipmentStatus(ctx context.Context, o *entities.Order, status entities.ShipmentStatus, description string) error
	Transition(ctx context.Context, o *entities.Order, target entities.OrderStatus, actor string) error
}

type ShipmentSource interface {
	ListActiveShipments(ctx context.Context, limit int) ([]entities.ShipmentRef, error)
}

type CarrierGateway interface {
	FetchShipments(ctx context.Context, trackingNumbers []string) ([]carrier.Shipment, error)
	CreateInternetDocument(ctx context.Context, req carrier.WaybillRequest) (carrier.Waybill, error)
}

// LeaderLock gates the scheduled job to a single instance of a
// multi-instance deployment.
type LeaderLock interface {
	TryAcquire(ctx context.Context) (bool, error)
}

type ShipmentSyncService struct {
	logger  *slog.Logger
	orders  Orders
	source  ShipmentSource
	carrier CarrierGateway
	leader  LeaderLock
	sender  entities.ContactInfo

	interval  time.Duration
	batchSize int
	workers   int
}

func NewShipmentSyncService(
	logger *slog.Logger,
	orders Orders,
	source ShipmentSource,
	gateway CarrierGateway,
	leader LeaderLock,
	sender entities.ContactInfo,
	interval time.Duration,
	batchSize, workers int,
) *ShipmentSyncService {
	return &ShipmentSyncService{
		logger:    logger.With(slog.String("service", "shipment_sync")),
		orders:    orders,
		source:    source,
		carrier:   gateway,
		leader:    leader,
		sender:    sender,
		interval:  interval,
		batchSize: batchSize,
		workers:   workers,
	}
}

// Run is the scheduled loop. A failing tick is logged and retried on the
// next interval; it never takes the process down.
func (s *ShipmentSyncService) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("shipment sync started", slog.Duration("interval", s.interval))
	for {
		select {
		case <-ticker.C:
			if err := s.SyncActive(ctx); err != nil {
				s.logger.Error("shipment sync tick failed", slog.Any("error", err))
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// SyncActive loads every order with a live shipment, asks the carrier
// about all of them in one batched call, and applies each change in the
// order's own transaction. Only the elected leader runs the body, and a
// failure on one order never aborts the rest of the batch.
func (s *ShipmentSyncService) SyncActive(ctx context.Context) error {
	isLeader, err := s.leader.TryAcquire(ctx)
	if err != nil {
		shipmentSyncRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to acquire leader lock: %w", err)
	}
	if !isLeader {
		s.logger.Debug("not the leader, skipping sync")
		shipmentSyncRuns.WithLabelValues("follower").Inc()
		return nil
	}

	refs, err := s.source.ListActiveShipments(ctx, s.batchSize)
	if err != nil {
		shipmentSyncRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to list active shipments: %w", err)
	}
	if len(refs) == 0 {
		shipmentSyncRuns.WithLabelValues("ok").Inc()
		return nil
	}

	numbers := make([]string, 0, len(refs))
	for _, ref := range refs {
		numbers = append(numbers, ref.TrackingNumber)
	}

	shipments, err := s.carrier.FetchShipments(ctx, numbers)
	if err != nil {
		shipmentSyncRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to fetch shipments: %w", err)
	}
	byNumber := make(map[string]carrier.Shipment, len(shipments))
	for _, sh := range shipments {
		byNumber[sh.TrackingNumber] = sh
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, ref := range refs {
		ref := ref
		sh, ok := byNumber[ref.TrackingNumber]
		if !ok || sh.Status == ref.Status {
			continue
		}
		g.Go(func() error {
			s.syncOne(gctx, ref.OrderID, sh)
			return nil
		})
	}
	err = g.Wait()
	shipmentSyncRuns.WithLabelValues("ok").Inc()
	return err
}

func (s *ShipmentSyncService) syncOne(ctx context.Context, orderID int64, sh carrier.Shipment) {
	_, err := s.orders.UpdateOrderByID(ctx, orderID, func(ctx context.Context, o *entities.Order) error {
		return s.orders.ApplyShipmentStatus(ctx, o, sh.Status, sh.StatusDescription)
	})
	if err != nil {
		s.logger.Error("failed to sync shipment",
			slog.Int64("order_id", orderID),
			slog.String("tracking_number", sh.TrackingNumber),
			slog.Any("error", err))
		return
	}
	s.logger.Info("shipment synced",
		slog.Int64("order_id", orderID),
		slog.String("carrier_status", string(sh.Status)))
}

type WaybillInput struct {
	WeightGrams int
	Actor       string
}

// CreateWaybill requests a tracking number from the carrier and seeds
// the order's shipment. Permitted only once all items are packed or a
// proof photo exists. The carrier call happens before the order
// transaction: a network failure leaves the order untouched.
func (s *ShipmentSyncService) CreateWaybill(ctx context.Context, orderID int64, in WaybillInput) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Shipment.TrackingNumber != "" {
		return entities.Order{}, fmt.Errorf("%w: waybill already exists", entities.ErrConflict)
	}
	if !order.ReadyToBePacked() {
		return entities.Order{}, fmt.Errorf("%w: items not packed and no proof photo", entities.ErrInvalidTransition)
	}

	req := carrier.WaybillRequest{
		OrderID:      orderID,
		Recipient:    order.RecipientContact,
		Sender:       s.sender,
		WeightGrams:  in.WeightGrams,
		DeclaredCost: order.Prices.TotalCost,
	}
	if order.Payment.Type == entities.PaymentTypeCashOnDelivery && !order.Payment.IsPaid {
		req.CashOnDelivery = order.Prices.TotalCost
	}

	wb, err := s.carrier.CreateInternetDocument(ctx, req)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create waybill: %w", err)
	}

	return s.orders.UpdateOrderByID(ctx, orderID, func(ctx context.Context, o *entities.Order) error {
		if o.Shipment.TrackingNumber != "" {
			return fmt.Errorf("%w: waybill already exists", entities.ErrConflict)
		}

		o.Shipment.TrackingNumber = wb.TrackingNumber
		o.Shipment.Status = entities.ShipmentStatusCreated
		o.Shipment.EstimatedDelivery = wb.EstimatedDeliveryDate
		o.AppendLog("waybill created: " + wb.TrackingNumber)

		// Paid orders go straight to READY_TO_SHIP; cash-on-delivery
		// stays at PACKED until handover.
		target := entities.StatusPacked
		if o.Payment.IsPaid {
			target = entities.StatusReadyToShip
		}
		for o.Status != target {
			next, ok := nextTowards(o.Status, target)
			if !ok {
				break
			}
			if err := s.orders.Transition(ctx, o, next, in.Actor); err != nil {
				return err
			}
		}
		return nil
	})
}

// nextTowards walks the main line of the state machine one step in the
// direction of target.
func nextTowards(from, target entities.OrderStatus) (entities.OrderStatus, bool) {
	line := []entities.OrderStatus{
		entities.StatusNew, entities.StatusProcessing, entities.StatusReadyToPack,
		entities.StatusPacked, entities.StatusReadyToShip,
		entities.StatusShipped, entities.StatusFinished,
	}
	fromIdx, targetIdx := -1, -1
	for i, st := range line {
		if st == from {
			fromIdx = i
		}
		if st == target {
			targetIdx = i
		}
	}
	if fromIdx < 0 || targetIdx < 0 || fromIdx >= targetIdx {
		return "", false
	}
	return line[fromIdx+1], true
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/craftmarket/order-service/internal/config"
	"github.com/craftmarket/order-service/internal/entities"
	"github.com/craftmarket/order-service/pkg/trm"
	"github.com/craftmarket/order-service/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	InsertOrder(ctx context.Context, o entities.Order) error
	UpdateOrder(ctx context.Context, o entities.Order) error
	AppendLogs(ctx context.Context, orderID int64, logs []entities.LogEntry) error
	DeleteOrder(ctx context.Context, id int64) error
}

// InventoryLedger is the stock ledger contract. Implementations must
// make every reservation a single atomic conditional mutation and run on
// the ambient trm transaction.
type InventoryLedger interface {
	ReserveForCart(ctx context.Context, sku string, qty int, cartID string) error
	ChangeCartedQty(ctx context.Context, sku, cartID string, newQty, oldQty int) error
	ReleaseFromCart(ctx context.Context, sku, cartID string) error
	ReserveForOrder(ctx context.Context, sku string, qty int, orderID int64) error
	ReleaseFromOrder(ctx context.Context, sku string, orderID int64) error
	ConsumeOrdered(ctx context.Context, orderID int64) error
	ReturnOrderedToStock(ctx context.Context, orderID int64) error
	AddToStock(ctx context.Context, sku string, qty int) error
	SetTotalStock(ctx context.Context, sku string, qty int) error
	GetRecord(ctx context.Context, sku string) (entities.InventoryRecord, error)
}

type CustomerRepo interface {
	GetOrCreateByPhone(ctx context.Context, contact entities.ContactInfo) (entities.Customer, error)
	GetByID(ctx context.Context, id int64) (entities.Customer, error)
	IncrementTotalOrdersCost(ctx context.Context, id int64, amount int) error
	UpsertCartItem(ctx context.Context, customerID int64, item entities.CartItem) error
	DeleteCartItem(ctx context.Context, customerID int64, sku string) error
	ClearCart(ctx context.Context, customerID int64) error
}

type Catalog interface {
	GetProductsBySKUs(ctx context.Context, skus []string) ([]entities.Product, error)
	IncrementSalesCount(ctx context.Context, sku string, qty int) error
}

type Sequences interface {
	NextValue(ctx context.Context, collection string) (int64, error)
}

// EventPublisher emits notifications for downstream consumers (email,
// bots). Delivery is best effort and never blocks an order commit.
type EventPublisher interface {
	OrderCreated(ctx context.Context, o entities.Order) error
	OrderStatusChanged(ctx context.Context, o entities.Order, from, to entities.OrderStatus) error
}

// SearchSyncer feeds the secondary search index. Enqueue operations are
// non-blocking and eventually consistent.
type SearchSyncer interface {
	EnqueueOrderUpsert(o entities.Order)
	EnqueueOrderDelete(orderID int64)
}

type Cache interface {
	Get(key int64) ([]byte, bool)
	Set(key int64, value []byte)
	Delete(key int64)
}

type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	ledger    InventoryLedger
	customers CustomerRepo
	catalog   Catalog
	sequences Sequences
	events    EventPublisher
	search    SearchSyncer
	cache     Cache
	managers  config.Managers
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	ledger InventoryLedger,
	customers CustomerRepo,
	catalog Catalog,
	sequences Sequences,
	events EventPublisher,
	search SearchSyncer,
	cache Cache,
	managers config.Managers,
) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		ledger:    ledger,
		customers: customers,
		catalog:   catalog,
		sequences: sequences,
		events:    events,
		search:    search,
		cache:     cache,
		managers:  managers,
	}
}

const ordersCollection = "orders"

type OrderItemInput struct {
	SKU      string
	Qty      int
	Services []string
}

type CreateOrderInput struct {
	Customer        entities.ContactInfo
	Recipient       entities.ContactInfo
	Items           []OrderItemInput
	DiscountValue   int
	PaymentMethodID int64
	PaymentType     entities.PaymentType
	IsPaid          bool
	ManagerID       string
	// FromCart releases the customer's carted reservations for the
	// ordered SKUs while converting them into hard reservations.
	FromCart bool
}

// CreateOrder turns a checkout request into a persisted order. The
// customer resolution, id assignment, per-item stock reservation and the
// order insert share one transaction: if any single reservation fails
// the whole order is rolled back and no stock stays held.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if len(in.Items) == 0 {
		return entities.Order{}, entities.ErrEmptyOrder
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		customer, err := s.customers.GetOrCreateByPhone(ctx, in.Customer)
		if err != nil {
			return fmt.Errorf("failed to resolve customer: %w", err)
		}

		id, err := s.sequences.NextValue(ctx, ordersCollection)
		if err != nil {
			return fmt.Errorf("failed to assign order id: %w", err)
		}

		items, gilding, err := s.resolveItems(ctx, in.Items)
		if err != nil {
			return err
		}

		order = entities.Order{
			ID:               id,
			CustomerID:       customer.ID,
			CustomerContact:  in.Customer,
			RecipientContact: in.Recipient,
			Items:            items,
			Prices:           entities.Prices{DiscountValue: in.DiscountValue},
			Payment: entities.PaymentInfo{
				MethodID: in.PaymentMethodID,
				Type:     in.PaymentType,
				IsPaid:   in.IsPaid,
			},
			Status:    entities.StatusNew,
			CreatedAt: time.Now(),
		}
		order.Shipment.Recipient = in.Recipient
		order.RecalcPrices()
		order.AppendLog("order created")
		s.assignManager(&order, in.ManagerID, gilding)

		for _, it := range items {
			if in.FromCart {
				if _, carted := customer.CartItemBySKU(it.SKU); carted {
					if err := s.ledger.ReleaseFromCart(ctx, it.SKU, customer.CartID); err != nil {
						return err
					}
					if err := s.customers.DeleteCartItem(ctx, customer.ID, it.SKU); err != nil {
						return err
					}
				}
			}
			if err := s.ledger.ReserveForOrder(ctx, it.SKU, it.Qty, id); err != nil {
				if errors.Is(err, entities.ErrInsufficientStock) {
					reservationRejected.WithLabelValues("order").Inc()
				}
				return fmt.Errorf("failed to reserve %s: %w", it.SKU, err)
			}
		}

		return s.orders.InsertOrder(ctx, order)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.search.EnqueueOrderUpsert(order)
	if err := s.events.OrderCreated(context.WithoutCancel(ctx), order); err != nil {
		s.logger.Error("failed to publish order created event",
			slog.Int64("order_id", order.ID), slog.Any("error", err))
	}

	s.logger.Info("order created",
		slog.Int64("order_id", order.ID), slog.Int64("customer_id", order.CustomerID))
	return order, nil
}

// resolveItems validates the requested SKUs against the catalog and
// prices them. The second result reports whether any item belongs to the
// gilding category.
func (s *OrderService) resolveItems(ctx context.Context, inputs []OrderItemInput) ([]entities.OrderItem, bool, error) {
	skus := make([]string, 0, len(inputs))
	for _, in := range inputs {
		skus = append(skus, in.SKU)
	}

	products, err := s.catalog.GetProductsBySKUs(ctx, skus)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve products: %w", err)
	}

	type resolved struct {
		product entities.Product
		variant entities.Variant
	}
	bySKU := make(map[string]resolved)
	for _, p := range products {
		for _, v := range p.Variants {
			bySKU[v.SKU] = resolved{product: p, variant: v}
		}
	}

	gilding := false
	items := make([]entities.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		r, ok := bySKU[in.SKU]
		if !ok {
			return nil, false, fmt.Errorf("%w: %s", entities.ErrVariantNotFound, in.SKU)
		}
		if r.product.CategoryID == s.managers.GildingCategoryID {
			gilding = true
		}
		items = append(items, entities.OrderItem{
			SKU:       in.SKU,
			ProductID: r.product.ID,
			VariantID: r.variant.ID,
			Qty:       in.Qty,
			Price:     r.variant.Price,
			Cost:      r.variant.Cost,
			Services:  in.Services,
		})
	}
	return items, gilding, nil
}

// assignManager applies the deterministic fallback rule when no explicit
// manager is given. Re-assignment that would not change the manager is a
// no-op without a log entry.
func (s *OrderService) assignManager(o *entities.Order, explicit string, gilding bool) {
	target := explicit
	if target == "" {
		if gilding {
			target = s.managers.GildingManager
		} else {
			target = s.managers.DefaultManager
		}
	}
	if o.ManagerID == target {
		return
	}
	o.ManagerID = target
	o.AppendLog("manager assigned: " + target)
}

// GetOrderByID serves the read path through the LRU cache; misses fall
// back to the repository with a short retry.
func (s *OrderService) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.Int64("order_id", id), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, id)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(id, data)
	}
	return order, nil
}

// UpdateOrderByID is the transactional read-modify-write funnel every
// mutation goes through: load the aggregate under lock, apply fn, save,
// commit. Inventory calls made by fn ride the same transaction, so the
// order and the ledger always change together or not at all. The search
// index is synced after commit, outside the transaction.
func (s *OrderService) UpdateOrderByID(ctx context.Context, id int64, fn func(ctx context.Context, o *entities.Order) error) (entities.Order, error) {
	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrderByID(ctx, id)
		if err != nil {
			return err
		}

		logsBefore := len(order.Logs)
		if err := fn(ctx, &order); err != nil {
			return err
		}

		if err := s.orders.UpdateOrder(ctx, order); err != nil {
			return err
		}
		if err := s.orders.AppendLogs(ctx, id, order.Logs[logsBefore:]); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(id)
	s.search.EnqueueOrderUpsert(updated)
	return updated, nil
}

// ChangeStatus advances the order through the state machine, running the
// transition's stock and customer side effects in the same transaction.
func (s *OrderService) ChangeStatus(ctx context.Context, id int64, target entities.OrderStatus, actor string) (entities.Order, error) {
	var from entities.OrderStatus
	updated, err := s.UpdateOrderByID(ctx, id, func(ctx context.Context, o *entities.Order) error {
		from = o.Status
		return s.Transition(ctx, o, target, actor)
	})
	if err != nil {
		return entities.Order{}, err
	}

	if err := s.events.OrderStatusChanged(context.WithoutCancel(ctx), updated, from, target); err != nil {
		s.logger.Error("failed to publish status changed event",
			slog.Int64("order_id", id), slog.Any("error", err))
	}
	return updated, nil
}

// Transition applies target to o in place, enforcing the transition
// table and running the side effects the target implies. Must be called
// inside the order's transaction.
func (s *OrderService) Transition(ctx context.Context, o *entities.Order, target entities.OrderStatus, actor string) error {
	if !o.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, o.Status, target)
	}

	switch target {
	case entities.StatusPacked:
		if !o.ReadyToBePacked() {
			return fmt.Errorf("%w: items not packed and no proof photo", entities.ErrInvalidTransition)
		}

	case entities.StatusCanceled:
		if err := s.ledger.ReturnOrderedToStock(ctx, o.ID); err != nil {
			return err
		}

	case entities.StatusShipped:
		if err := s.consumeStock(ctx, o); err != nil {
			return err
		}

	case entities.StatusFinished:
		// An order finished straight from READY_TO_SHIP never ran the
		// shipped side effects; consumeStock is a no-op the second time.
		if err := s.consumeStock(ctx, o); err != nil {
			return err
		}
		if err := s.customers.IncrementTotalOrdersCost(ctx, o.CustomerID, o.Prices.TotalCost); err != nil {
			return err
		}

	case entities.StatusReturned:
		for _, it := range o.Items {
			if err := s.ledger.AddToStock(ctx, it.SKU, it.Qty); err != nil {
				return err
			}
		}
	}

	prev := o.Status
	o.Status = target

	msg := fmt.Sprintf("status changed: %s -> %s", prev, target)
	if actor != "" {
		msg += " by " + actor
	}
	o.AppendLog(msg)
	return nil
}

// consumeStock runs the shipped side effects exactly once per order:
// hard reservations become consumed stock and sales counters move.
func (s *OrderService) consumeStock(ctx context.Context, o *entities.Order) error {
	if o.StockConsumed {
		return nil
	}
	if err := s.ledger.ConsumeOrdered(ctx, o.ID); err != nil {
		return err
	}
	for _, it := range o.Items {
		if err := s.catalog.IncrementSalesCount(ctx, it.SKU, it.Qty); err != nil {
			return err
		}
	}
	o.StockConsumed = true
	return nil
}

type EditOrderInput struct {
	Recipient     *entities.ContactInfo
	Items         []OrderItemInput
	DiscountValue *int
	Actor         string
}

// EditOrder replaces the order's mutable fields. When the item set
// changes, previous hard reservations are released back to stock and the
// new set is reserved inside the same transaction: a failed re-reserve
// rolls everything back to the pre-edit state.
func (s *OrderService) EditOrder(ctx context.Context, id int64, in EditOrderInput) (entities.Order, error) {
	return s.UpdateOrderByID(ctx, id, func(ctx context.Context, o *entities.Order) error {
		if !o.Editable() {
			return fmt.Errorf("%w: order already shipped", entities.ErrForbidden)
		}

		if in.Items != nil {
			if len(in.Items) == 0 {
				return entities.ErrEmptyOrder
			}
			for _, it := range o.Items {
				if err := s.ledger.ReleaseFromOrder(ctx, it.SKU, o.ID); err != nil {
					return err
				}
				if err := s.ledger.AddToStock(ctx, it.SKU, it.Qty); err != nil {
					return err
				}
			}

			items, gilding, err := s.resolveItems(ctx, in.Items)
			if err != nil {
				return err
			}
			for _, it := range items {
				if err := s.ledger.ReserveForOrder(ctx, it.SKU, it.Qty, o.ID); err != nil {
					return fmt.Errorf("failed to reserve %s: %w", it.SKU, err)
				}
			}
			o.Items = items
			s.assignManager(o, "", gilding)
		}

		if in.Recipient != nil {
			o.RecipientContact = *in.Recipient
			o.Shipment.Recipient = *in.Recipient
		}
		if in.DiscountValue != nil {
			o.Prices.DiscountValue = *in.DiscountValue
		}
		o.RecalcPrices()

		msg := "order edited"
		if in.Actor != "" {
			msg += " by " + in.Actor
		}
		o.AppendLog(msg)
		return nil
	})
}

// DeleteOrder is the explicit admin path that hard-deletes an order,
// reversing its reservations first. Cancellation is a status, not a
// delete; this exists for cleanup only.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrderByID(ctx, id)
		if err != nil {
			return err
		}
		if !order.StockConsumed {
			if err := s.ledger.ReturnOrderedToStock(ctx, id); err != nil {
				return err
			}
		}
		return s.orders.DeleteOrder(ctx, id)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(id)
	s.search.EnqueueOrderDelete(id)
	s.logger.Info("order deleted", slog.Int64("order_id", id))
	return nil
}

// AttachPhoto records a packing proof photo, which satisfies the PACKED
// guard for orders with unpacked items.
func (s *OrderService) AttachPhoto(ctx context.Context, id int64, url string) (entities.Order, error) {
	return s.UpdateOrderByID(ctx, id, func(_ context.Context, o *entities.Order) error {
		o.Photos = append(o.Photos, url)
		o.AppendLog("packing photo attached")
		return nil
	})
}

func (s *OrderService) MarkItemPacked(ctx context.Context, id int64, sku string, packed bool) (entities.Order, error) {
	return s.UpdateOrderByID(ctx, id, func(_ context.Context, o *entities.Order) error {
		for i := range o.Items {
			if o.Items[i].SKU == sku {
				o.Items[i].IsPacked = packed
				return nil
			}
		}
		return fmt.Errorf("%w: %s", entities.ErrVariantNotFound, sku)
	})
}

// ApplyShipmentStatus folds a carrier status report into the order. It
// records the carrier state and, when the report maps to an order status
// change, runs the regular transition with its side effects. Redundant
// reports (same carrier status) change nothing and log nothing.
func (s *OrderService) ApplyShipmentStatus(ctx context.Context, o *entities.Order, status entities.ShipmentStatus, description string) error {
	if o.Shipment.Status == status {
		return nil
	}

	o.Shipment.Status = status
	o.Shipment.StatusDescription = description
	o.AppendLog("carrier status: " + string(status))

	if status == entities.ShipmentStatusCashPickedUp && o.Payment.Type == entities.PaymentTypeCashOnDelivery {
		o.Payment.IsPaid = true
	}

	target, ok := orderStatusForShipment(o, status)
	if !ok || o.Status == target {
		return nil
	}

	// A carrier report can land several states ahead of bookkeeping: a
	// cash-on-delivery order still sits at PACKED when the parcel starts
	// moving. Walk the main line toward the mapped status so every
	// intermediate transition runs its side effects.
	for o.Status != target {
		next := target
		if !o.Status.CanTransitionTo(next) {
			step, walkable := nextTowards(o.Status, target)
			if !walkable {
				// Off the main line; keep the carrier state on record and
				// let an operator resolve the order status.
				s.logger.Warn("carrier status does not map to a valid transition",
					slog.Int64("order_id", o.ID),
					slog.String("status", string(o.Status)),
					slog.String("carrier_status", string(status)))
				return nil
			}
			next = step
		}
		if err := s.Transition(ctx, o, next, "carrier"); err != nil {
			return err
		}
	}
	return nil
}

// orderStatusForShipment is the single authoritative mapping from
// carrier signals to order statuses. Delivery means FINISHED for prepaid
// orders; cash-on-delivery orders finish on cash pickup instead.
func orderStatusForShipment(o *entities.Order, status entities.ShipmentStatus) (entities.OrderStatus, bool) {
	switch status {
	case entities.ShipmentStatusReceived:
		if o.Payment.Type != entities.PaymentTypeCashOnDelivery {
			return entities.StatusFinished, true
		}
	case entities.ShipmentStatusCashPickedUp:
		if o.Payment.Type == entities.PaymentTypeCashOnDelivery {
			return entities.StatusFinished, true
		}
	case entities.ShipmentStatusRecipientDenied:
		return entities.StatusRecipientDenied, true
	case entities.ShipmentStatusInCity, entities.ShipmentStatusHeadingToCity:
		return entities.StatusShipped, true
	}
	return "", false
}

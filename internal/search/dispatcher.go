package search

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/craftmarket/order-service/internal/entities"
	"github.com/craftmarket/order-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const ordersCollection = "orders"

var syncFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "order_service",
	Subsystem: "search",
	Name:      "sync_failures_total",
	Help:      "Order documents that never reached the search index.",
}, []string{"reason"})

// OrderDocument is the denormalized projection of an order kept in the
// search index.
type OrderDocument struct {
	ID             int64     `json:"id"`
	Status         string    `json:"status"`
	CustomerID     int64     `json:"customer_id"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	RecipientName  string    `json:"recipient_name"`
	RecipientCity  string    `json:"recipient_city"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	ManagerID      string    `json:"manager_id,omitempty"`
	TotalCost      int       `json:"total_cost"`
	SKUs           []string  `json:"skus"`
	CreatedAt      time.Time `json:"created_at"`
}

func documentFromOrder(o entities.Order) OrderDocument {
	skus := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		skus = append(skus, it.SKU)
	}
	return OrderDocument{
		ID:             o.ID,
		Status:         string(o.Status),
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerContact.Name,
		CustomerPhone:  o.CustomerContact.Phone,
		RecipientName:  o.RecipientContact.Name,
		RecipientCity:  o.RecipientContact.City,
		TrackingNumber: o.Shipment.TrackingNumber,
		ManagerID:      o.ManagerID,
		TotalCost:      o.Prices.TotalCost,
		SKUs:           skus,
		CreatedAt:      o.CreatedAt,
	}
}

type task struct {
	orderID int64
	doc     *OrderDocument
}

// Dispatcher decouples order transactions from the search index. Tasks
// are queued on a bounded channel and shipped by a single worker with
// retries; when the queue is full the task is dropped and logged, the
// index is a secondary projection and must never block writes.
type Dispatcher struct {
	logger *slog.Logger
	index  Index
	tasks  chan task
	retry  utils.RetryConfig
}

func NewDispatcher(logger *slog.Logger, index Index, buffer int) *Dispatcher {
	return &Dispatcher{
		logger: logger.With(slog.String("service", "search_dispatcher")),
		index:  index,
		tasks:  make(chan task, buffer),
		retry: utils.RetryConfig{
			MaxAttempts:  5,
			InitialDelay: time.Millisecond * 200,
			MaxDelay:     time.Second * 5,
		},
	}
}

func (d *Dispatcher) EnqueueOrderUpsert(o entities.Order) {
	doc := documentFromOrder(o)
	select {
	case d.tasks <- task{orderID: o.ID, doc: &doc}:
	default:
		syncFailures.WithLabelValues("overflow").Inc()
		d.logger.Warn("search queue full, dropping upsert", slog.Int64("order_id", o.ID))
	}
}

func (d *Dispatcher) EnqueueOrderDelete(orderID int64) {
	select {
	case d.tasks <- task{orderID: orderID}:
	default:
		syncFailures.WithLabelValues("overflow").Inc()
		d.logger.Warn("search queue full, dropping delete", slog.Int64("order_id", orderID))
	}
}

// Run drains the queue until ctx is canceled.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case t := <-d.tasks:
			d.process(ctx, t)
		case <-ctx.Done():
			return nil
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, t task) {
	id := strconv.FormatInt(t.orderID, 10)

	err := utils.Retry(d.retry, func() error {
		if t.doc != nil {
			return d.index.Upsert(ctx, ordersCollection, id, t.doc)
		}
		return d.index.Delete(ctx, ordersCollection, id)
	})
	if err != nil {
		syncFailures.WithLabelValues("error").Inc()
		d.logger.Error("failed to sync order to search index",
			slog.Int64("order_id", t.orderID), slog.Any("error", err))
	}
}

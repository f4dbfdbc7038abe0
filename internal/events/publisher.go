package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/craftmarket/order-service/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// Envelope wraps every published event. Consumers dedupe on EventID.
type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	Status     string    `json:"status"`
	TotalCost  int       `json:"total_cost"`
	SKUs       []string  `json:"skus"`
	CreatedAt  time.Time `json:"created_at"`
}

type OrderStatusChangedPayload struct {
	OrderID    int64  `json:"order_id"`
	CustomerID int64  `json:"customer_id"`
	From       string `json:"from"`
	To         string `json:"to"`
}

type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, brokers []string, topic string, batchTimeout time.Duration) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: batchTimeout,
		RequiredAcks: kafka.RequireAll,
	}
	return &Publisher{
		logger: logger.With(slog.String("service", "events")),
		writer: writer,
	}
}

func (p *Publisher) OrderCreated(ctx context.Context, o entities.Order) error {
	skus := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		skus = append(skus, it.SKU)
	}
	return p.publish(ctx, o.ID, EventOrderCreated, OrderCreatedPayload{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Status:     string(o.Status),
		TotalCost:  o.Prices.TotalCost,
		SKUs:       skus,
		CreatedAt:  o.CreatedAt,
	})
}

func (p *Publisher) OrderStatusChanged(ctx context.Context, o entities.Order, from, to entities.OrderStatus) error {
	return p.publish(ctx, o.ID, EventOrderStatusChanged, OrderStatusChangedPayload{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		From:       string(from),
		To:         string(to),
	})
}

// publish keys messages by order id so every consumer sees one order's
// events in order.
func (p *Publisher) publish(ctx context.Context, orderID int64, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	env := Envelope{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    body,
	}
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(orderID, 10)),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	p.logger.Debug("event published",
		slog.String("event_type", eventType), slog.Int64("order_id", orderID))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

package repo

import (
	"database/sql"
	"time"

	"github.com/craftmarket/order-service/internal/entities"

	"github.com/lib/pq"
)

type Order struct {
	ID               int64          `db:"id"`
	CustomerID       int64          `db:"customer_id"`
	CustomerName     string         `db:"customer_name"`
	CustomerPhone    string         `db:"customer_phone"`
	CustomerEmail    sql.NullString `db:"customer_email"`
	RecipientName    string         `db:"recipient_name"`
	RecipientPhone   string         `db:"recipient_phone"`
	RecipientCity    sql.NullString `db:"recipient_city"`
	RecipientAddress sql.NullString `db:"recipient_address"`

	ItemsCost     int `db:"items_cost"`
	DiscountValue int `db:"discount_value"`
	TotalCost     int `db:"total_cost"`

	TrackingNumber    sql.NullString `db:"tracking_number"`
	ShipmentStatus    sql.NullString `db:"shipment_status"`
	ShipmentStatusDsc sql.NullString `db:"shipment_status_description"`
	EstimatedDelivery sql.NullTime   `db:"estimated_delivery"`

	PaymentMethodID int64  `db:"payment_method_id"`
	PaymentType     string `db:"payment_type"`
	IsPaid          bool   `db:"is_paid"`

	Status        string         `db:"status"`
	ManagerID     sql.NullString `db:"manager_id"`
	StockConsumed bool           `db:"stock_consumed"`
	Photos        pq.StringArray `db:"photos"`

	CreatedAt time.Time `db:"created_at"`
}

type OrderItem struct {
	OrderID   int64          `db:"order_id"`
	SKU       string         `db:"sku"`
	ProductID int64          `db:"product_id"`
	VariantID int64          `db:"variant_id"`
	Qty       int            `db:"qty"`
	Price     int            `db:"price"`
	Cost      int            `db:"cost"`
	Services  pq.StringArray `db:"services"`
	IsPacked  bool           `db:"is_packed"`
}

type OrderLog struct {
	OrderID int64     `db:"order_id"`
	Time    time.Time `db:"time"`
	Text    string    `db:"text"`
}

type InventoryRecord struct {
	SKU          string `db:"sku"`
	AvailableQty int    `db:"available_qty"`
}

type CartedReservation struct {
	SKU       string    `db:"sku"`
	CartID    string    `db:"cart_id"`
	Qty       int       `db:"qty"`
	CreatedAt time.Time `db:"created_at"`
}

type OrderReservation struct {
	SKU     string `db:"sku"`
	OrderID int64  `db:"order_id"`
	Qty     int    `db:"qty"`
}

type Customer struct {
	ID              int64          `db:"id"`
	CartID          string         `db:"cart_id"`
	Name            string         `db:"name"`
	Phone           string         `db:"phone"`
	Email           sql.NullString `db:"email"`
	City            sql.NullString `db:"city"`
	Address         sql.NullString `db:"address"`
	TotalOrdersCost int            `db:"total_orders_cost"`
}

type CartItem struct {
	CustomerID int64     `db:"customer_id"`
	SKU        string    `db:"sku"`
	VariantID  int64     `db:"variant_id"`
	Qty        int       `db:"qty"`
	AddedAt    time.Time `db:"added_at"`
}

type Variant struct {
	ID        int64  `db:"id"`
	ProductID int64  `db:"product_id"`
	SKU       string `db:"sku"`
	Price     int    `db:"price"`
	Cost      int    `db:"cost"`
}

type Product struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	CategoryID int64  `db:"category_id"`
}

// Mapping is explicit and field-by-field in both directions, so
// invariant-protected columns (id, status, stock_consumed) can never be
// overwritten by stray DTO keys.

func OrderToEntity(o Order, items []OrderItem, logs []OrderLog) entities.Order {
	order := entities.Order{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		CustomerContact: entities.ContactInfo{
			Name:  o.CustomerName,
			Phone: o.CustomerPhone,
			Email: nullStringToString(o.CustomerEmail),
		},
		RecipientContact: entities.ContactInfo{
			Name:    o.RecipientName,
			Phone:   o.RecipientPhone,
			City:    nullStringToString(o.RecipientCity),
			Address: nullStringToString(o.RecipientAddress),
		},
		Prices: entities.Prices{
			ItemsCost:     o.ItemsCost,
			DiscountValue: o.DiscountValue,
			TotalCost:     o.TotalCost,
		},
		Shipment: entities.Shipment{
			TrackingNumber:    nullStringToString(o.TrackingNumber),
			Status:            entities.ShipmentStatus(nullStringToString(o.ShipmentStatus)),
			StatusDescription: nullStringToString(o.ShipmentStatusDsc),
		},
		Payment: entities.PaymentInfo{
			MethodID: o.PaymentMethodID,
			Type:     entities.PaymentType(o.PaymentType),
			IsPaid:   o.IsPaid,
		},
		Status:        entities.OrderStatus(o.Status),
		ManagerID:     nullStringToString(o.ManagerID),
		StockConsumed: o.StockConsumed,
		Photos:        []string(o.Photos),
		CreatedAt:     o.CreatedAt,
	}
	if o.EstimatedDelivery.Valid {
		order.Shipment.EstimatedDelivery = o.EstimatedDelivery.Time
	}
	order.Shipment.Recipient = order.RecipientContact

	order.Items = make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}

	order.Logs = make([]entities.LogEntry, 0, len(logs))
	for _, l := range logs {
		order.Logs = append(order.Logs, entities.LogEntry{Time: l.Time, Text: l.Text})
	}
	return order
}

func ItemToEntity(it OrderItem) entities.OrderItem {
	return entities.OrderItem{
		SKU:       it.SKU,
		ProductID: it.ProductID,
		VariantID: it.VariantID,
		Qty:       it.Qty,
		Price:     it.Price,
		Cost:      it.Cost,
		Services:  []string(it.Services),
		IsPacked:  it.IsPacked,
	}
}

func ItemFromEntity(orderID int64, it entities.OrderItem) OrderItem {
	return OrderItem{
		OrderID:   orderID,
		SKU:       it.SKU,
		ProductID: it.ProductID,
		VariantID: it.VariantID,
		Qty:       it.Qty,
		Price:     it.Price,
		Cost:      it.Cost,
		Services:  pq.StringArray(it.Services),
		IsPacked:  it.IsPacked,
	}
}

func CustomerToEntity(c Customer, cart []CartItem) entities.Customer {
	customer := entities.Customer{
		ID:     c.ID,
		CartID: c.CartID,
		Contact: entities.ContactInfo{
			Name:    c.Name,
			Phone:   c.Phone,
			Email:   nullStringToString(c.Email),
			City:    nullStringToString(c.City),
			Address: nullStringToString(c.Address),
		},
		TotalOrdersCost: c.TotalOrdersCost,
	}
	for _, it := range cart {
		customer.Cart = append(customer.Cart, entities.CartItem{
			SKU:       it.SKU,
			VariantID: it.VariantID,
			Qty:       it.Qty,
			AddedAt:   it.AddedAt,
		})
	}
	return customer
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

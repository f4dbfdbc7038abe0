package handler

import (
	"time"

	"github.com/craftmarket/order-service/internal/entities"
	"github.com/craftmarket/order-service/internal/service"
)

// Contact identifies one party of an order
type Contact struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,e164"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderItem is a single order line
type OrderItem struct {
	SKU       string   `json:"sku" validate:"required"`
	ProductID int64    `json:"product_id,omitempty"`
	VariantID int64    `json:"variant_id,omitempty"`
	Qty       int      `json:"qty" validate:"required,gt=0"`
	Price     int      `json:"price,omitempty"`
	Cost      int      `json:"cost,omitempty"`
	Services  []string `json:"services,omitempty"`
	IsPacked  bool     `json:"is_packed"`
}

type Prices struct {
	ItemsCost     int `json:"items_cost"`
	DiscountValue int `json:"discount_value"`
	TotalCost     int `json:"total_cost"`
}

type Payment struct {
	MethodID int64  `json:"method_id"`
	Type     string `json:"type"`
	IsPaid   bool   `json:"is_paid"`
}

type Shipment struct {
	TrackingNumber    string    `json:"tracking_number,omitempty"`
	Status            string    `json:"status,omitempty"`
	StatusDescription string    `json:"status_description,omitempty"`
	EstimatedDelivery time.Time `json:"estimated_delivery,omitzero"`
}

type LogEntry struct {
	Time time.Time `json:"time"`
	Text string    `json:"text"`
}

// Order is the full API representation of an order
type Order struct {
	ID            int64      `json:"id"`
	CustomerID    int64      `json:"customer_id"`
	Customer      Contact    `json:"customer"`
	Recipient     Contact    `json:"recipient"`
	Items         []OrderItem `json:"items"`
	Prices        Prices     `json:"prices"`
	Shipment      Shipment   `json:"shipment"`
	Payment       Payment    `json:"payment"`
	Status        string     `json:"status"`
	ManagerID     string     `json:"manager_id,omitempty"`
	StockConsumed bool       `json:"stock_consumed"`
	Photos        []string   `json:"photos,omitempty"`
	Logs          []LogEntry `json:"logs,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CreateOrderItem struct {
	SKU      string   `json:"sku" validate:"required"`
	Qty      int      `json:"qty" validate:"required,gt=0"`
	Services []string `json:"services,omitempty"`
}

type CreateOrderRequest struct {
	Customer        Contact           `json:"customer" validate:"required"`
	Recipient       Contact           `json:"recipient" validate:"required"`
	Items           []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
	DiscountValue   int               `json:"discount_value" validate:"gte=0"`
	PaymentMethodID int64             `json:"payment_method_id" validate:"required"`
	PaymentType     string            `json:"payment_type" validate:"required,oneof=prepaid cash_on_delivery"`
	IsPaid          bool              `json:"is_paid"`
	ManagerID       string            `json:"manager_id,omitempty"`
	FromCart        bool              `json:"from_cart"`
}

type EditOrderRequest struct {
	Recipient     *Contact          `json:"recipient,omitempty"`
	Items         []CreateOrderItem `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	DiscountValue *int              `json:"discount_value,omitempty" validate:"omitempty,gte=0"`
	Actor         string            `json:"actor" validate:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Actor  string `json:"actor" validate:"required"`
}

type CreateWaybillRequest struct {
	WeightGrams int    `json:"weight_grams" validate:"required,gt=0"`
	Actor       string `json:"actor" validate:"required"`
}

type AttachPhotoRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type MarkPackedRequest struct {
	IsPacked bool `json:"is_packed"`
}

type CartItemRequest struct {
	SKU string `json:"sku" validate:"required"`
	Qty int    `json:"qty" validate:"required,gt=0"`
}

type ChangeCartQtyRequest struct {
	Qty int `json:"qty" validate:"gte=0"`
}

type SetStockRequest struct {
	Qty int `json:"qty" validate:"gte=0"`
}

// InventoryRecord is the stock state of one SKU
type InventoryRecord struct {
	SKU          string `json:"sku"`
	AvailableQty int    `json:"available_qty"`
	CartedQty    int    `json:"carted_qty"`
	OrderedQty   int    `json:"ordered_qty"`
	TotalQty     int    `json:"total_qty"`
}

func ContactEntityToJSON(c entities.ContactInfo) Contact {
	return Contact{
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		City:    c.City,
		Address: c.Address,
	}
}

func ContactJSONToEntity(c Contact) entities.ContactInfo {
	return entities.ContactInfo{
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		City:    c.City,
		Address: c.Address,
	}
}

func ItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		SKU:       i.SKU,
		ProductID: i.ProductID,
		VariantID: i.VariantID,
		Qty:       i.Qty,
		Price:     i.Price,
		Cost:      i.Cost,
		Services:  i.Services,
		IsPacked:  i.IsPacked,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}
	logs := make([]LogEntry, 0, len(o.Logs))
	for _, l := range o.Logs {
		logs = append(logs, LogEntry{Time: l.Time, Text: l.Text})
	}

	return Order{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Customer:   ContactEntityToJSON(o.CustomerContact),
		Recipient:  ContactEntityToJSON(o.RecipientContact),
		Items:      items,
		Prices: Prices{
			ItemsCost:     o.Prices.ItemsCost,
			DiscountValue: o.Prices.DiscountValue,
			TotalCost:     o.Prices.TotalCost,
		},
		Shipment: Shipment{
			TrackingNumber:    o.Shipment.TrackingNumber,
			Status:            string(o.Shipment.Status),
			StatusDescription: o.Shipment.StatusDescription,
			EstimatedDelivery: o.Shipment.EstimatedDelivery,
		},
		Payment: Payment{
			MethodID: o.Payment.MethodID,
			Type:     string(o.Payment.Type),
			IsPaid:   o.Payment.IsPaid,
		},
		Status:        string(o.Status),
		ManagerID:     o.ManagerID,
		StockConsumed: o.StockConsumed,
		Photos:        o.Photos,
		Logs:          logs,
		CreatedAt:     o.CreatedAt,
	}
}

func itemInputsFromJSON(items []CreateOrderItem) []service.OrderItemInput {
	out := make([]service.OrderItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, service.OrderItemInput{
			SKU:      it.SKU,
			Qty:      it.Qty,
			Services: it.Services,
		})
	}
	return out
}

func CreateOrderRequestToInput(req CreateOrderRequest) service.CreateOrderInput {
	return service.CreateOrderInput{
		Customer:        ContactJSONToEntity(req.Customer),
		Recipient:       ContactJSONToEntity(req.Recipient),
		Items:           itemInputsFromJSON(req.Items),
		DiscountValue:   req.DiscountValue,
		PaymentMethodID: req.PaymentMethodID,
		PaymentType:     entities.PaymentType(req.PaymentType),
		IsPaid:          req.IsPaid,
		ManagerID:       req.ManagerID,
		FromCart:        req.FromCart,
	}
}

func EditOrderRequestToInput(req EditOrderRequest) service.EditOrderInput {
	in := service.EditOrderInput{
		DiscountValue: req.DiscountValue,
		Actor:         req.Actor,
	}
	if req.Recipient != nil {
		contact := ContactJSONToEntity(*req.Recipient)
		in.Recipient = &contact
	}
	if req.Items != nil {
		in.Items = itemInputsFromJSON(req.Items)
	}
	return in
}

func RecordEntityToJSON(r entities.InventoryRecord) InventoryRecord {
	return InventoryRecord{
		SKU:          r.SKU,
		AvailableQty: r.AvailableQty,
		CartedQty:    r.CartedQty(),
		OrderedQty:   r.OrderedQty(),
		TotalQty:     r.TotalQty(),
	}
}

package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type ContactInfo struct {
	Name    string
	Phone   string
	Email   string
	City    string
	Address string
}

type OrderItem struct {
	SKU       string
	ProductID int64
	VariantID int64
	Qty       int
	Price     int // per unit, kopecks
	Cost      int
	Services  []string
	IsPacked  bool
}

type Prices struct {
	ItemsCost     int
	DiscountValue int
	TotalCost     int
}

type PaymentType string

const (
	PaymentTypePrepaid        PaymentType = "prepaid"
	PaymentTypeCashOnDelivery PaymentType = "cash_on_delivery"
)

type PaymentInfo struct {
	MethodID int64
	Type     PaymentType
	IsPaid   bool
}

// ShipmentStatus is the normalized carrier-side status of a parcel,
// distinct from the order status it may drive.
type ShipmentStatus string

const (
	ShipmentStatusCreated         ShipmentStatus = "CREATED"
	ShipmentStatusHeadingToCity   ShipmentStatus = "HEADING_TO_CITY"
	ShipmentStatusInCity          ShipmentStatus = "IN_CITY"
	ShipmentStatusReceived        ShipmentStatus = "RECEIVED"
	ShipmentStatusCashPickedUp    ShipmentStatus = "CASH_PICKED_UP"
	ShipmentStatusRecipientDenied ShipmentStatus = "RECIPIENT_DENIED"
)

type Shipment struct {
	TrackingNumber    string
	Status            ShipmentStatus
	StatusDescription string
	Recipient         ContactInfo
	Sender            ContactInfo
	EstimatedDelivery time.Time
}

// ShipmentRef is the slice of an order the shipment sync job works
// with: enough to decide whether the carrier reported something new.
type ShipmentRef struct {
	OrderID        int64
	TrackingNumber string
	Status         ShipmentStatus
}

type LogEntry struct {
	Time time.Time
	Text string
}

type Order struct {
	ID               int64
	CustomerID       int64
	CustomerContact  ContactInfo
	RecipientContact ContactInfo
	Items            []OrderItem
	Prices           Prices
	Shipment         Shipment
	Payment          PaymentInfo
	Status           OrderStatus
	ManagerID        string

	// StockConsumed is set once shipped side effects (hard reservations
	// turned into consumed stock) have run, so a FINISHED transition that
	// skips SHIPPED does not apply them twice.
	StockConsumed bool

	Photos []string
	Logs   []LogEntry

	CreatedAt time.Time
}

// AppendLog adds an audit entry. Logs are append-only and never rewritten.
func (o *Order) AppendLog(text string) {
	o.Logs = append(o.Logs, LogEntry{Time: time.Now(), Text: text})
}

func (o *Order) AllItemsPacked() bool {
	for _, it := range o.Items {
		if !it.IsPacked {
			return false
		}
	}
	return len(o.Items) > 0
}

// ReadyToBePacked is the PACKED transition guard: every item packed, or
// at least one proof photo attached.
func (o *Order) ReadyToBePacked() bool {
	return o.AllItemsPacked() || len(o.Photos) > 0
}

func (o *Order) Editable() bool {
	return !o.Status.ShippedOrLater()
}

// RecalcPrices recomputes the derived totals from the item set.
func (o *Order) RecalcPrices() {
	itemsCost := 0
	for _, it := range o.Items {
		itemsCost += it.Qty * it.Price
	}
	o.Prices.ItemsCost = itemsCost
	o.Prices.TotalCost = itemsCost - o.Prices.DiscountValue
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(o)
}

package carrier

import (
	"time"

	"github.com/craftmarket/order-service/internal/entities"
)

// Shipment is the carrier's view of one parcel.
type Shipment struct {
	TrackingNumber    string                  `json:"tracking_number"`
	Status            entities.ShipmentStatus `json:"status"`
	StatusDescription string                  `json:"status_description"`
}

// WaybillRequest is the payload for registering a new internet document
// with the carrier.
type WaybillRequest struct {
	OrderID        int64                `json:"order_id"`
	Recipient      entities.ContactInfo `json:"recipient"`
	Sender         entities.ContactInfo `json:"sender"`
	WeightGrams    int                  `json:"weight_grams"`
	DeclaredCost   int                  `json:"declared_cost"`
	CashOnDelivery int                  `json:"cash_on_delivery,omitempty"`
}

type Waybill struct {
	TrackingNumber        string    `json:"tracking_number"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
}

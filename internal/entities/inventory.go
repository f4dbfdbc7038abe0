package entities

import "time"

// CartedReservation is a soft stock hold tied to an active shopping cart.
type CartedReservation struct {
	Qty       int
	CartID    string
	CreatedAt time.Time
}

// OrderReservation is a hard stock hold tied to a confirmed order.
type OrderReservation struct {
	Qty     int
	OrderID int64
}

// InventoryRecord is the per-SKU stock ledger entry. AvailableQty may
// never go negative; every mutation that would violate that is rejected
// atomically at the storage layer.
type InventoryRecord struct {
	SKU          string
	AvailableQty int
	Carted       []CartedReservation
	Ordered      []OrderReservation
}

func (r InventoryRecord) CartedQty() int {
	total := 0
	for _, c := range r.Carted {
		total += c.Qty
	}
	return total
}

func (r InventoryRecord) OrderedQty() int {
	total := 0
	for _, o := range r.Ordered {
		total += o.Qty
	}
	return total
}

// TotalQty is the conservation sum across the free, soft-reserved and
// hard-reserved pools.
func (r InventoryRecord) TotalQty() int {
	return r.AvailableQty + r.CartedQty() + r.OrderedQty()
}

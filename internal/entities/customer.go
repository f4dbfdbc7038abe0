package entities

import "time"

type CartItem struct {
	SKU       string
	VariantID int64
	Qty       int
	AddedAt   time.Time
}

type Customer struct {
	ID      int64
	CartID  string // stable id of the active cart, used as carted-reservation key
	Contact ContactInfo

	// TotalOrdersCost is the customer's lifetime spend, incremented once
	// per finished order.
	TotalOrdersCost int

	Cart []CartItem
}

func (c *Customer) CartItemBySKU(sku string) (CartItem, bool) {
	for _, it := range c.Cart {
		if it.SKU == sku {
			return it, true
		}
	}
	return CartItem{}, false
}

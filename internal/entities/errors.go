package entities

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrSKUNotFound       = errors.New("sku not found")
	ErrVariantNotFound   = errors.New("variant not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("operation forbidden")
	ErrConflict          = errors.New("conflicting inventory state")
	ErrEmptyOrder        = errors.New("order has no items")
)

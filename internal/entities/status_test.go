package entities_test

import (
	"testing"

	"github.com/craftmarket/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name   string
		from   entities.OrderStatus
		to     entities.OrderStatus
		wantOK bool
	}{
		{name: "new to processing", from: entities.StatusNew, to: entities.StatusProcessing, wantOK: true},
		{name: "new to canceled", from: entities.StatusNew, to: entities.StatusCanceled, wantOK: true},
		{name: "new skips processing", from: entities.StatusNew, to: entities.StatusReadyToPack, wantOK: false},
		{name: "ready to ship straight to finished", from: entities.StatusReadyToShip, to: entities.StatusFinished, wantOK: true},
		{name: "shipped to recipient denied", from: entities.StatusShipped, to: entities.StatusRecipientDenied, wantOK: true},
		{name: "shipped cannot cancel", from: entities.StatusShipped, to: entities.StatusCanceled, wantOK: false},
		{name: "recipient denied to returning", from: entities.StatusRecipientDenied, to: entities.StatusReturning, wantOK: true},
		{name: "recipient denied to refused", from: entities.StatusRecipientDenied, to: entities.StatusRefusedToReturn, wantOK: true},
		{name: "returning to returned", from: entities.StatusReturning, to: entities.StatusReturned, wantOK: true},
		{name: "finished is terminal", from: entities.StatusFinished, to: entities.StatusFinished, wantOK: false},
		{name: "canceled is terminal", from: entities.StatusCanceled, to: entities.StatusProcessing, wantOK: false},
		{name: "returned is terminal", from: entities.StatusReturned, to: entities.StatusReturning, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantOK, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	terminal := []entities.OrderStatus{
		entities.StatusFinished, entities.StatusCanceled,
		entities.StatusReturned, entities.StatusRefusedToReturn,
	}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), string(s))
		assert.Empty(t, transitionsFrom(s), "terminal status %s must have no outgoing transitions", s)
	}
	for _, s := range entities.NonTerminalStatuses() {
		assert.False(t, s.IsTerminal(), string(s))
	}
}

func transitionsFrom(s entities.OrderStatus) []entities.OrderStatus {
	all := []entities.OrderStatus{
		entities.StatusNew, entities.StatusProcessing, entities.StatusReadyToPack,
		entities.StatusPacked, entities.StatusReadyToShip, entities.StatusShipped,
		entities.StatusFinished, entities.StatusRecipientDenied, entities.StatusReturning,
		entities.StatusRefusedToReturn, entities.StatusReturned, entities.StatusCanceled,
	}
	var out []entities.OrderStatus
	for _, target := range all {
		if s.CanTransitionTo(target) {
			out = append(out, target)
		}
	}
	return out
}

func TestOrder_ReadyToBePacked(t *testing.T) {
	order := entities.Order{
		Items: []entities.OrderItem{
			{SKU: "A", IsPacked: true},
			{SKU: "B"},
		},
	}
	assert.False(t, order.ReadyToBePacked())

	order.Photos = []string{"https://cdn.example/proof.jpg"}
	assert.True(t, order.ReadyToBePacked())

	order.Photos = nil
	order.Items[1].IsPacked = true
	assert.True(t, order.ReadyToBePacked())

	empty := entities.Order{}
	assert.False(t, empty.ReadyToBePacked())
}

func TestOrder_RecalcPrices(t *testing.T) {
	order := entities.Order{
		Items: []entities.OrderItem{
			{SKU: "A", Qty: 2, Price: 1500},
			{SKU: "B", Qty: 1, Price: 700},
		},
		Prices: entities.Prices{DiscountValue: 200},
	}
	order.RecalcPrices()

	assert.Equal(t, 3700, order.Prices.ItemsCost)
	assert.Equal(t, 3500, order.Prices.TotalCost)
}

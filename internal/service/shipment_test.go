package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/craftmarket/order-service/internal/carrier"
	"github.com/craftmarket/order-service/internal/entities"
	"github.com/craftmarket/order-service/internal/service"
	mocks "github.com/craftmarket/order-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shipmentMocks struct {
	orders  *mocks.MockOrders
	source  *mocks.MockShipmentSource
	gateway *mocks.MockCarrierGateway
	leader  *mocks.MockLeaderLock
}

func newShipmentSync(t *testing.T) (*service.ShipmentSyncService, shipmentMocks) {
	m := shipmentMocks{
		orders:  mocks.NewMockOrders(t),
		source:  mocks.NewMockShipmentSource(t),
		gateway: mocks.NewMockCarrierGateway(t),
		leader:  mocks.NewMockLeaderLock(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sender := entities.ContactInfo{Name: "CraftMarket", City: "Moscow"}

	svc := service.NewShipmentSyncService(
		logger, m.orders, m.source, m.gateway, m.leader, sender,
		time.Minute, 100, 4)
	return svc, m
}

func TestShipmentSyncService_SyncActive(t *testing.T) {
	t.Run("follower does nothing", func(t *testing.T) {
		svc, m := newShipmentSync(t)
		m.leader.EXPECT().TryAcquire(mock.Anything).Return(false, nil)

		require.NoError(t, svc.SyncActive(context.Background()))
	})

	t.Run("one batched carrier call, unchanged shipments skipped", func(t *testing.T) {
		svc, m := newShipmentSync(t)
		m.leader.EXPECT().TryAcquire(mock.Anything).Return(true, nil)
		m.source.EXPECT().ListActiveShipments(mock.Anything, 100).Return([]entities.ShipmentRef{
			{OrderID: 1, TrackingNumber: "TN-1", Status: entities.ShipmentStatusCreated},
			{OrderID: 2, TrackingNumber: "TN-2", Status: entities.ShipmentStatusInCity},
		}, nil)
		m.gateway.EXPECT().FetchShipments(mock.Anything, []string{"TN-1", "TN-2"}).
			Return([]carrier.Shipment{
				{TrackingNumber: "TN-1", Status: entities.ShipmentStatusInCity},
				{TrackingNumber: "TN-2", Status: entities.ShipmentStatusInCity},
			}, nil).Once()
		// only TN-1 changed
		m.orders.EXPECT().UpdateOrderByID(mock.Anything, int64(1), mock.Anything).
			Return(entities.Order{ID: 1}, nil).Once()

		require.NoError(t, svc.SyncActive(context.Background()))
	})

	t.Run("one failing order does not stop the batch", func(t *testing.T) {
		svc, m := newShipmentSync(t)
		m.leader.EXPECT().TryAcquire(mock.Anything).Return(true, nil)
		m.source.EXPECT().ListActiveShipments(mock.Anything, 100).Return([]entities.ShipmentRef{
			{OrderID: 1, TrackingNumber: "TN-1", Status: entities.ShipmentStatusCreated},
			{OrderID: 2, TrackingNumber: "TN-2", Status: entities.ShipmentStatusCreated},
		}, nil)
		m.gateway.EXPECT().FetchShipments(mock.Anything, mock.Anything).
			Return([]carrier.Shipment{
				{TrackingNumber: "TN-1", Status: entities.ShipmentStatusReceived},
				{TrackingNumber: "TN-2", Status: entities.ShipmentStatusReceived},
			}, nil)
		m.orders.EXPECT().UpdateOrderByID(mock.Anything, int64(1), mock.Anything).
			Return(entities.Order{}, errors.New("deadlock")).Once()
		m.orders.EXPECT().UpdateOrderByID(mock.Anything, int64(2), mock.Anything).
			Return(entities.Order{ID: 2}, nil).Once()

		require.NoError(t, svc.SyncActive(context.Background()))
	})

	t.Run("carrier outage fails the tick", func(t *testing.T) {
		svc, m := newShipmentSync(t)
		fetchErr := errors.New("gateway timeout")
		m.leader.EXPECT().TryAcquire(mock.Anything).Return(true, nil)
		m.source.EXPECT().ListActiveShipments(mock.Anything, 100).Return([]entities.ShipmentRef{
			{OrderID: 1, TrackingNumber: "TN-1"},
		}, nil)
		m.gateway.EXPECT().FetchShipments(mock.Anything, mock.Anything).Return(nil, fetchErr)

		assert.ErrorIs(t, svc.SyncActive(context.Background()), fetchErr)
	})
}

func TestShipmentSyncService_CreateWaybill(t *testing.T) {
	packedOrder := func() entities.Order {
		return entities.Order{
			ID:     7,
			Status: entities.StatusReadyToPack,
			Items:  []entities.OrderItem{{SKU: "RING-S", Qty: 1, Price: 2000, IsPacked: true}},
			Prices: entities.Prices{ItemsCost: 2000, TotalCost: 2000},
			Payment: entities.PaymentInfo{
				Type:   entities.PaymentTypePrepaid,
				IsPaid: true,
			},
			RecipientContact: entities.ContactInfo{Name: "Anna", City: "Kazan"},
		}
	}

	applyFn := func(o entities.Order) func(ctx context.Context, id int64, fn func(context.Context, *entities.Order) error) (entities.Order, error) {
		return func(ctx context.Context, id int64, fn func(context.Context, *entities.Order) error) (entities.Order, error) {
			if err := fn(ctx, &o); err != nil {
				return entities.Order{}, err
			}
			return o, nil
		}
	}

	transitionByTable := func(m shipmentMocks) {
		m.orders.EXPECT().
			Transition(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, o *entities.Order, target entities.OrderStatus, _ string) error {
				if !o.Status.CanTransitionTo(target) {
					return entities.ErrInvalidTransition
				}
				o.Status = target
				return nil
			})
	}

	t.Run("rejects order that is not ready", func(t *testing.T) {
		svc, m := newShipmentSync(t)
		o := packedOrder()
		o.Items[0].IsPacked = false
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(o, nil)

		_, err := svc.CreateWaybill(context.Background(), 7, service.WaybillInput{WeightGrams: 300})
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})

	t.Run("rejects duplicate waybill", func(t *testing.T) {
		svc, m := newShipmentSync(t)
		o := packedOrder()
		o.Shipment.TrackingNumber = "TN-7"
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(o, nil)

		_, err := svc.CreateWaybill(context.Background(), 7, service.WaybillInput{WeightGrams: 300})
		assert.ErrorIs(t, err, entities.ErrConflict)
	})

	t.Run("carrier failure leaves the order untouched", func(t *testing.T) {
		svc, m := newShipmentSync(t)
		carrierErr := errors.New("carrier unavailable")
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(packedOrder(), nil)
		m.gateway.EXPECT().CreateInternetDocument(mock.Anything, mock.Anything).
			Return(carrier.Waybill{}, carrierErr)

		_, err := svc.CreateWaybill(context.Background(), 7, service.WaybillInput{WeightGrams: 300})
		assert.ErrorIs(t, err, carrierErr)
	})

	t.Run("paid order moves to ready to ship", func(t *testing.T) {
		svc, m := newShipmentSync(t)
		eta := time.Now().Add(72 * time.Hour)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(packedOrder(), nil)
		m.gateway.EXPECT().
			CreateInternetDocument(mock.Anything, mock.MatchedBy(func(req carrier.WaybillRequest) bool {
				return req.OrderID == 7 && req.DeclaredCost == 2000 && req.CashOnDelivery == 0
			})).
			Return(carrier.Waybill{TrackingNumber: "TN-7", EstimatedDeliveryDate: eta}, nil)
		m.orders.EXPECT().UpdateOrderByID(mock.Anything, int64(7), mock.Anything).
			RunAndReturn(applyFn(packedOrder()))
		transitionByTable(m)

		got, err := svc.CreateWaybill(context.Background(), 7, service.WaybillInput{WeightGrams: 300, Actor: "manager-a"})
		require.NoError(t, err)
		assert.Equal(t, "TN-7", got.Shipment.TrackingNumber)
		assert.Equal(t, entities.ShipmentStatusCreated, got.Shipment.Status)
		assert.Equal(t, entities.StatusReadyToShip, got.Status)
	})

	t.Run("cod order carries collection amount and stays packed", func(t *testing.T) {
		svc, m := newShipmentSync(t)
		o := packedOrder()
		o.Payment = entities.PaymentInfo{Type: entities.PaymentTypeCashOnDelivery}
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(o, nil)
		m.gateway.EXPECT().
			CreateInternetDocument(mock.Anything, mock.MatchedBy(func(req carrier.WaybillRequest) bool {
				return req.CashOnDelivery == 2000
			})).
			Return(carrier.Waybill{TrackingNumber: "TN-8"}, nil)
		m.orders.EXPECT().UpdateOrderByID(mock.Anything, int64(7), mock.Anything).
			RunAndReturn(applyFn(o))
		transitionByTable(m)

		got, err := svc.CreateWaybill(context.Background(), 7, service.WaybillInput{WeightGrams: 300})
		require.NoError(t, err)
		assert.Equal(t, "TN-8", got.Shipment.TrackingNumber)
		assert.Equal(t, entities.StatusPacked, got.Status)
	})
}

package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/craftmarket/order-service/internal/config"
	"github.com/craftmarket/order-service/internal/entities"
	"github.com/craftmarket/order-service/internal/service"
	mocks "github.com/craftmarket/order-service/internal/service/mocks"
	txMocks "github.com/craftmarket/order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testManagers = config.Managers{
	DefaultManager:    "manager-a",
	GildingManager:    "manager-b",
	GildingCategoryID: 7,
}

type orderMocks struct {
	orders    *mocks.MockOrderRepo
	ledger    *mocks.MockInventoryLedger
	customers *mocks.MockCustomerRepo
	catalog   *mocks.MockCatalog
	sequences *mocks.MockSequences
	events    *mocks.MockEventPublisher
	search    *mocks.MockSearchSyncer
	cache     *mocks.MockCache
}

func newOrderService(t *testing.T) (*service.OrderService, orderMocks) {
	m := orderMocks{
		orders:    mocks.NewMockOrderRepo(t),
		ledger:    mocks.NewMockInventoryLedger(t),
		customers: mocks.NewMockCustomerRepo(t),
		catalog:   mocks.NewMockCatalog(t),
		sequences: mocks.NewMockSequences(t),
		events:    mocks.NewMockEventPublisher(t),
		search:    mocks.NewMockSearchSyncer(t),
		cache:     mocks.NewMockCache(t),
	}
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, tx,
		m.orders, m.ledger, m.customers, m.catalog, m.sequences,
		m.events, m.search, m.cache, testManagers)
	return svc, m
}

func catalogFixture() []entities.Product {
	return []entities.Product{
		{
			ID: 1, Name: "Silver ring", CategoryID: 3,
			Variants: []entities.Variant{
				{ID: 11, ProductID: 1, SKU: "RING-S", Price: 2000, Cost: 900},
				{ID: 12, ProductID: 1, SKU: "RING-M", Price: 2100, Cost: 950},
			},
		},
		{
			ID: 2, Name: "Gilded pendant", CategoryID: 7,
			Variants: []entities.Variant{
				{ID: 21, ProductID: 2, SKU: "PNDT-G", Price: 5000, Cost: 2500},
			},
		},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	customer := entities.Customer{ID: 42, CartID: "cart-42", Contact: entities.ContactInfo{Phone: "+79990001122"}}
	reserveErr := errors.New("db error")

	testCases := []struct {
		name         string
		input        service.CreateOrderInput
		mockBehavior func(m orderMocks)
		wantErr      error
		check        func(t *testing.T, got entities.Order)
	}{
		{
			name: "creates order and reserves stock",
			input: service.CreateOrderInput{
				Customer:        entities.ContactInfo{Phone: "+79990001122"},
				Recipient:       entities.ContactInfo{Name: "Anna", City: "Kazan"},
				Items:           []service.OrderItemInput{{SKU: "RING-S", Qty: 2}},
				DiscountValue:   500,
				PaymentMethodID: 1,
				PaymentType:     entities.PaymentTypePrepaid,
				IsPaid:          true,
			},
			mockBehavior: func(m orderMocks) {
				m.customers.EXPECT().GetOrCreateByPhone(mock.Anything, mock.Anything).Return(customer, nil)
				m.sequences.EXPECT().NextValue(mock.Anything, "orders").Return(1001, nil)
				m.catalog.EXPECT().GetProductsBySKUs(mock.Anything, []string{"RING-S"}).Return(catalogFixture(), nil)
				m.ledger.EXPECT().ReserveForOrder(mock.Anything, "RING-S", 2, int64(1001)).Return(nil)
				m.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(nil)
				m.search.EXPECT().EnqueueOrderUpsert(mock.Anything).Return()
				m.events.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, got entities.Order) {
				assert.Equal(t, int64(1001), got.ID)
				assert.Equal(t, entities.StatusNew, got.Status)
				assert.Equal(t, "manager-a", got.ManagerID)
				assert.Equal(t, 4000, got.Prices.ItemsCost)
				assert.Equal(t, 3500, got.Prices.TotalCost)
				require.Len(t, got.Items, 1)
				assert.Equal(t, 2000, got.Items[0].Price)
			},
		},
		{
			name: "gilding item routes to gilding manager",
			input: service.CreateOrderInput{
				Customer:    entities.ContactInfo{Phone: "+79990001122"},
				Items:       []service.OrderItemInput{{SKU: "PNDT-G", Qty: 1}},
				PaymentType: entities.PaymentTypePrepaid,
			},
			mockBehavior: func(m orderMocks) {
				m.customers.EXPECT().GetOrCreateByPhone(mock.Anything, mock.Anything).Return(customer, nil)
				m.sequences.EXPECT().NextValue(mock.Anything, "orders").Return(1002, nil)
				m.catalog.EXPECT().GetProductsBySKUs(mock.Anything, []string{"PNDT-G"}).Return(catalogFixture(), nil)
				m.ledger.EXPECT().ReserveForOrder(mock.Anything, "PNDT-G", 1, int64(1002)).Return(nil)
				m.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(nil)
				m.search.EXPECT().EnqueueOrderUpsert(mock.Anything).Return()
				m.events.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, got entities.Order) {
				assert.Equal(t, "manager-b", got.ManagerID)
			},
		},
		{
			name: "failed reservation rolls the order back",
			input: service.CreateOrderInput{
				Customer:    entities.ContactInfo{Phone: "+79990001122"},
				Items:       []service.OrderItemInput{{SKU: "RING-S", Qty: 2}, {SKU: "RING-M", Qty: 1}},
				PaymentType: entities.PaymentTypePrepaid,
			},
			mockBehavior: func(m orderMocks) {
				m.customers.EXPECT().GetOrCreateByPhone(mock.Anything, mock.Anything).Return(customer, nil)
				m.sequences.EXPECT().NextValue(mock.Anything, "orders").Return(1003, nil)
				m.catalog.EXPECT().GetProductsBySKUs(mock.Anything, []string{"RING-S", "RING-M"}).Return(catalogFixture(), nil)
				m.ledger.EXPECT().ReserveForOrder(mock.Anything, "RING-S", 2, int64(1003)).Return(nil)
				m.ledger.EXPECT().ReserveForOrder(mock.Anything, "RING-M", 1, int64(1003)).Return(reserveErr)
				// no insert, no events, no search sync
			},
			wantErr: reserveErr,
		},
		{
			name: "unknown sku",
			input: service.CreateOrderInput{
				Customer:    entities.ContactInfo{Phone: "+79990001122"},
				Items:       []service.OrderItemInput{{SKU: "NOPE", Qty: 1}},
				PaymentType: entities.PaymentTypePrepaid,
			},
			mockBehavior: func(m orderMocks) {
				m.customers.EXPECT().GetOrCreateByPhone(mock.Anything, mock.Anything).Return(customer, nil)
				m.sequences.EXPECT().NextValue(mock.Anything, "orders").Return(1004, nil)
				m.catalog.EXPECT().GetProductsBySKUs(mock.Anything, []string{"NOPE"}).Return(catalogFixture(), nil)
			},
			wantErr: entities.ErrVariantNotFound,
		},
		{
			name:         "empty order rejected",
			input:        service.CreateOrderInput{Customer: entities.ContactInfo{Phone: "+79990001122"}},
			mockBehavior: func(m orderMocks) {},
			wantErr:      entities.ErrEmptyOrder,
		},
		{
			name: "from cart releases the carted reservation",
			input: service.CreateOrderInput{
				Customer:    entities.ContactInfo{Phone: "+79990001122"},
				Items:       []service.OrderItemInput{{SKU: "RING-S", Qty: 2}},
				PaymentType: entities.PaymentTypePrepaid,
				FromCart:    true,
			},
			mockBehavior: func(m orderMocks) {
				inCart := customer
				inCart.Cart = []entities.CartItem{{SKU: "RING-S", Qty: 2}}
				m.customers.EXPECT().GetOrCreateByPhone(mock.Anything, mock.Anything).Return(inCart, nil)
				m.sequences.EXPECT().NextValue(mock.Anything, "orders").Return(1005, nil)
				m.catalog.EXPECT().GetProductsBySKUs(mock.Anything, []string{"RING-S"}).Return(catalogFixture(), nil)
				m.ledger.EXPECT().ReleaseFromCart(mock.Anything, "RING-S", "cart-42").Return(nil)
				m.customers.EXPECT().DeleteCartItem(mock.Anything, int64(42), "RING-S").Return(nil)
				m.ledger.EXPECT().ReserveForOrder(mock.Anything, "RING-S", 2, int64(1005)).Return(nil)
				m.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(nil)
				m.search.EXPECT().EnqueueOrderUpsert(mock.Anything).Return()
				m.events.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			tc.mockBehavior(m)

			got, err := svc.CreateOrder(context.Background(), tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, got)
			}
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{ID: 7, Status: entities.StatusProcessing}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		id           int64
		mockBehavior func(m orderMocks)
		wantErr      error
		want         entities.Order
	}{
		{
			name: "success from cache",
			id:   7,
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(int64(7)).Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name: "success from repo and set to cache",
			id:   7,
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(int64(7)).Return(nil, false).Once()
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(validOrder, nil).Once()
				m.cache.EXPECT().Set(int64(7), validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name: "not found is not retried",
			id:   404,
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(int64(404)).Return(nil, false).Once()
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(404)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "transient error is retried",
			id:   7,
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(int64(7)).Return(nil, false).Once()
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).
					Return(entities.Order{}, errors.New("connection reset")).Once()
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).
					Return(validOrder, nil).Once()
				m.cache.EXPECT().Set(int64(7), validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			tc.mockBehavior(m)

			got, err := svc.GetOrderByID(context.Background(), tc.id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_ChangeStatus(t *testing.T) {
	baseOrder := func(status entities.OrderStatus) entities.Order {
		return entities.Order{
			ID:         7,
			CustomerID: 42,
			Status:     status,
			Items: []entities.OrderItem{
				{SKU: "RING-S", Qty: 2, Price: 2000},
			},
			Prices:  entities.Prices{ItemsCost: 4000, TotalCost: 4000},
			Payment: entities.PaymentInfo{Type: entities.PaymentTypePrepaid, IsPaid: true},
		}
	}

	expectSave := func(m orderMocks) {
		m.orders.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil)
		m.orders.EXPECT().AppendLogs(mock.Anything, int64(7), mock.Anything).Return(nil)
		m.cache.EXPECT().Delete(int64(7)).Return()
		m.search.EXPECT().EnqueueOrderUpsert(mock.Anything).Return()
		m.events.EXPECT().OrderStatusChanged(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	}

	testCases := []struct {
		name         string
		target       entities.OrderStatus
		mockBehavior func(m orderMocks)
		wantErr      error
		check        func(t *testing.T, got entities.Order)
	}{
		{
			name:   "packed rejected when nothing is packed",
			target: entities.StatusPacked,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(baseOrder(entities.StatusReadyToPack), nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:   "packed allowed with proof photo",
			target: entities.StatusPacked,
			mockBehavior: func(m orderMocks) {
				o := baseOrder(entities.StatusReadyToPack)
				o.Photos = []string{"https://cdn.example/proof.jpg"}
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(o, nil)
				expectSave(m)
			},
			check: func(t *testing.T, got entities.Order) {
				assert.Equal(t, entities.StatusPacked, got.Status)
			},
		},
		{
			name:   "cancel returns hard reservations to stock",
			target: entities.StatusCanceled,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(baseOrder(entities.StatusProcessing), nil)
				m.ledger.EXPECT().ReturnOrderedToStock(mock.Anything, int64(7)).Return(nil)
				expectSave(m)
			},
			check: func(t *testing.T, got entities.Order) {
				assert.Equal(t, entities.StatusCanceled, got.Status)
			},
		},
		{
			name:   "shipped consumes ordered stock",
			target: entities.StatusShipped,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(baseOrder(entities.StatusReadyToShip), nil)
				m.ledger.EXPECT().ConsumeOrdered(mock.Anything, int64(7)).Return(nil)
				m.catalog.EXPECT().IncrementSalesCount(mock.Anything, "RING-S", 2).Return(nil)
				expectSave(m)
			},
			check: func(t *testing.T, got entities.Order) {
				assert.Equal(t, entities.StatusShipped, got.Status)
				assert.True(t, got.StockConsumed)
			},
		},
		{
			name: "finished after shipped does not consume twice",
			mockBehavior: func(m orderMocks) {
				o := baseOrder(entities.StatusShipped)
				o.StockConsumed = true
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(o, nil)
				m.customers.EXPECT().IncrementTotalOrdersCost(mock.Anything, int64(42), 4000).Return(nil)
				expectSave(m)
			},
			target: entities.StatusFinished,
			check: func(t *testing.T, got entities.Order) {
				assert.Equal(t, entities.StatusFinished, got.Status)
			},
		},
		{
			name:   "finished straight from ready to ship runs shipped side effects",
			target: entities.StatusFinished,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(baseOrder(entities.StatusReadyToShip), nil)
				m.ledger.EXPECT().ConsumeOrdered(mock.Anything, int64(7)).Return(nil)
				m.catalog.EXPECT().IncrementSalesCount(mock.Anything, "RING-S", 2).Return(nil)
				m.customers.EXPECT().IncrementTotalOrdersCost(mock.Anything, int64(42), 4000).Return(nil)
				expectSave(m)
			},
			check: func(t *testing.T, got entities.Order) {
				assert.True(t, got.StockConsumed)
			},
		},
		{
			name:   "returned puts goods back to stock",
			target: entities.StatusReturned,
			mockBehavior: func(m orderMocks) {
				o := baseOrder(entities.StatusReturning)
				o.StockConsumed = true
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(o, nil)
				m.ledger.EXPECT().AddToStock(mock.Anything, "RING-S", 2).Return(nil)
				expectSave(m)
			},
			check: func(t *testing.T, got entities.Order) {
				assert.Equal(t, entities.StatusReturned, got.Status)
			},
		},
		{
			name:   "terminal order rejects any transition",
			target: entities.StatusProcessing,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(baseOrder(entities.StatusFinished), nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			tc.mockBehavior(m)

			got, err := svc.ChangeStatus(context.Background(), 7, tc.target, "operator")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, got)
			}
		})
	}
}

func TestOrderService_ApplyShipmentStatus(t *testing.T) {
	codOrder := func() *entities.Order {
		return &entities.Order{
			ID:         9,
			CustomerID: 42,
			Status:     entities.StatusShipped,
			Items:      []entities.OrderItem{{SKU: "RING-S", Qty: 1}},
			Prices:     entities.Prices{TotalCost: 2000},
			Payment:    entities.PaymentInfo{Type: entities.PaymentTypeCashOnDelivery},
			Shipment: entities.Shipment{
				TrackingNumber: "TN-1",
				Status:         entities.ShipmentStatusInCity,
			},
			StockConsumed: true,
		}
	}

	t.Run("redundant report changes nothing", func(t *testing.T) {
		svc, _ := newOrderService(t)
		o := codOrder()

		err := svc.ApplyShipmentStatus(context.Background(), o, entities.ShipmentStatusInCity, "in city")
		require.NoError(t, err)
		assert.Empty(t, o.Logs)
		assert.Equal(t, entities.StatusShipped, o.Status)
	})

	t.Run("cash pickup finishes cod order and marks it paid", func(t *testing.T) {
		svc, m := newOrderService(t)
		o := codOrder()

		m.customers.EXPECT().IncrementTotalOrdersCost(mock.Anything, int64(42), 2000).Return(nil)

		err := svc.ApplyShipmentStatus(context.Background(), o, entities.ShipmentStatusCashPickedUp, "cash picked up")
		require.NoError(t, err)
		assert.True(t, o.Payment.IsPaid)
		assert.Equal(t, entities.StatusFinished, o.Status)
	})

	t.Run("received does not finish a cod order", func(t *testing.T) {
		svc, _ := newOrderService(t)
		o := codOrder()

		err := svc.ApplyShipmentStatus(context.Background(), o, entities.ShipmentStatusReceived, "delivered")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusShipped, o.Status)
		assert.Equal(t, entities.ShipmentStatusReceived, o.Shipment.Status)
	})

	t.Run("received finishes a prepaid order", func(t *testing.T) {
		svc, m := newOrderService(t)
		o := codOrder()
		o.Payment = entities.PaymentInfo{Type: entities.PaymentTypePrepaid, IsPaid: true}

		m.customers.EXPECT().IncrementTotalOrdersCost(mock.Anything, int64(42), 2000).Return(nil)

		err := svc.ApplyShipmentStatus(context.Background(), o, entities.ShipmentStatusReceived, "delivered")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusFinished, o.Status)
	})

	t.Run("recipient denied moves order to the return branch", func(t *testing.T) {
		svc, _ := newOrderService(t)
		o := codOrder()

		err := svc.ApplyShipmentStatus(context.Background(), o, entities.ShipmentStatusRecipientDenied, "refused at pickup")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusRecipientDenied, o.Status)
	})

	t.Run("moving parcel walks a packed cod order up to shipped", func(t *testing.T) {
		svc, m := newOrderService(t)
		o := codOrder()
		o.Status = entities.StatusPacked
		o.Shipment.Status = entities.ShipmentStatusCreated
		o.StockConsumed = false

		m.ledger.EXPECT().ConsumeOrdered(mock.Anything, int64(9)).Return(nil)
		m.catalog.EXPECT().IncrementSalesCount(mock.Anything, "RING-S", 1).Return(nil)

		err := svc.ApplyShipmentStatus(context.Background(), o, entities.ShipmentStatusHeadingToCity, "heading to city")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusShipped, o.Status)
		assert.True(t, o.StockConsumed)
	})

	t.Run("cash pickup finishes a cod order still at packed", func(t *testing.T) {
		svc, m := newOrderService(t)
		o := codOrder()
		o.Status = entities.StatusPacked
		o.Shipment.Status = entities.ShipmentStatusCreated
		o.StockConsumed = false

		m.ledger.EXPECT().ConsumeOrdered(mock.Anything, int64(9)).Return(nil)
		m.catalog.EXPECT().IncrementSalesCount(mock.Anything, "RING-S", 1).Return(nil)
		m.customers.EXPECT().IncrementTotalOrdersCost(mock.Anything, int64(42), 2000).Return(nil)

		err := svc.ApplyShipmentStatus(context.Background(), o, entities.ShipmentStatusCashPickedUp, "cash picked up")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusFinished, o.Status)
		assert.True(t, o.Payment.IsPaid)
		assert.True(t, o.StockConsumed)
	})

	t.Run("report that outruns bookkeeping is recorded but not applied", func(t *testing.T) {
		svc, _ := newOrderService(t)
		o := codOrder()
		o.Status = entities.StatusPacked
		o.Shipment.Status = entities.ShipmentStatusCreated

		err := svc.ApplyShipmentStatus(context.Background(), o, entities.ShipmentStatusReceived, "delivered")
		require.NoError(t, err)
		// delivered maps to FINISHED only for prepaid; this is cod, so only
		// the carrier state moves
		assert.Equal(t, entities.StatusPacked, o.Status)
		assert.Equal(t, entities.ShipmentStatusReceived, o.Shipment.Status)
	})
}

func TestOrderService_EditOrder(t *testing.T) {
	baseOrder := func() entities.Order {
		return entities.Order{
			ID:     7,
			Status: entities.StatusProcessing,
			Items:  []entities.OrderItem{{SKU: "RING-S", Qty: 2, Price: 2000}},
			Prices: entities.Prices{ItemsCost: 4000, TotalCost: 4000},
		}
	}

	t.Run("shipped order cannot be edited", func(t *testing.T) {
		svc, m := newOrderService(t)
		o := baseOrder()
		o.Status = entities.StatusShipped
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(o, nil)

		_, err := svc.EditOrder(context.Background(), 7, service.EditOrderInput{
			Items: []service.OrderItemInput{{SKU: "RING-M", Qty: 1}},
		})
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("item change swaps reservations atomically", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(baseOrder(), nil)
		m.ledger.EXPECT().ReleaseFromOrder(mock.Anything, "RING-S", int64(7)).Return(nil)
		m.ledger.EXPECT().AddToStock(mock.Anything, "RING-S", 2).Return(nil)
		m.catalog.EXPECT().GetProductsBySKUs(mock.Anything, []string{"RING-M"}).Return(catalogFixture(), nil)
		m.ledger.EXPECT().ReserveForOrder(mock.Anything, "RING-M", 1, int64(7)).Return(nil)
		m.orders.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil)
		m.orders.EXPECT().AppendLogs(mock.Anything, int64(7), mock.Anything).Return(nil)
		m.cache.EXPECT().Delete(int64(7)).Return()
		m.search.EXPECT().EnqueueOrderUpsert(mock.Anything).Return()

		got, err := svc.EditOrder(context.Background(), 7, service.EditOrderInput{
			Items: []service.OrderItemInput{{SKU: "RING-M", Qty: 1}},
			Actor: "manager-a",
		})
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "RING-M", got.Items[0].SKU)
		assert.Equal(t, 2100, got.Prices.TotalCost)
	})

	t.Run("failed re-reserve aborts the edit", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(baseOrder(), nil)
		m.ledger.EXPECT().ReleaseFromOrder(mock.Anything, "RING-S", int64(7)).Return(nil)
		m.ledger.EXPECT().AddToStock(mock.Anything, "RING-S", 2).Return(nil)
		m.catalog.EXPECT().GetProductsBySKUs(mock.Anything, []string{"RING-M"}).Return(catalogFixture(), nil)
		m.ledger.EXPECT().ReserveForOrder(mock.Anything, "RING-M", 5, int64(7)).Return(entities.ErrInsufficientStock)

		_, err := svc.EditOrder(context.Background(), 7, service.EditOrderInput{
			Items: []service.OrderItemInput{{SKU: "RING-M", Qty: 5}},
		})
		assert.ErrorIs(t, err, entities.ErrInsufficientStock)
	})

	t.Run("recipient and discount update recalculates totals", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(baseOrder(), nil)
		m.orders.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil)
		m.orders.EXPECT().AppendLogs(mock.Anything, int64(7), mock.Anything).Return(nil)
		m.cache.EXPECT().Delete(int64(7)).Return()
		m.search.EXPECT().EnqueueOrderUpsert(mock.Anything).Return()

		discount := 1000
		recipient := entities.ContactInfo{Name: "Olga", City: "Tver"}
		got, err := svc.EditOrder(context.Background(), 7, service.EditOrderInput{
			Recipient:     &recipient,
			DiscountValue: &discount,
		})
		require.NoError(t, err)
		assert.Equal(t, recipient, got.RecipientContact)
		assert.Equal(t, 3000, got.Prices.TotalCost)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Run("returns reservations for a live order", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).
			Return(entities.Order{ID: 7, Status: entities.StatusProcessing}, nil)
		m.ledger.EXPECT().ReturnOrderedToStock(mock.Anything, int64(7)).Return(nil)
		m.orders.EXPECT().DeleteOrder(mock.Anything, int64(7)).Return(nil)
		m.cache.EXPECT().Delete(int64(7)).Return()
		m.search.EXPECT().EnqueueOrderDelete(int64(7)).Return()

		require.NoError(t, svc.DeleteOrder(context.Background(), 7))
	})

	t.Run("consumed stock is not returned", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).
			Return(entities.Order{ID: 7, Status: entities.StatusFinished, StockConsumed: true}, nil)
		m.orders.EXPECT().DeleteOrder(mock.Anything, int64(7)).Return(nil)
		m.cache.EXPECT().Delete(int64(7)).Return()
		m.search.EXPECT().EnqueueOrderDelete(int64(7)).Return()

		require.NoError(t, svc.DeleteOrder(context.Background(), 7))
	})
}

func TestOrderService_MarkItemPacked(t *testing.T) {
	svc, m := newOrderService(t)
	order := entities.Order{
		ID:     7,
		Status: entities.StatusReadyToPack,
		Items:  []entities.OrderItem{{SKU: "RING-S", Qty: 1}},
	}
	m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil)
	m.orders.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil)
	m.orders.EXPECT().AppendLogs(mock.Anything, int64(7), mock.Anything).Return(nil)
	m.cache.EXPECT().Delete(int64(7)).Return()
	m.search.EXPECT().EnqueueOrderUpsert(mock.Anything).Return()

	got, err := svc.MarkItemPacked(context.Background(), 7, "RING-S", true)
	require.NoError(t, err)
	assert.True(t, got.Items[0].IsPacked)

	_, err = svc.MarkItemPacked(context.Background(), 7, "NOPE", true)
	assert.Error(t, err)
}

package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/craftmarket/order-service/internal/entities"
	"github.com/craftmarket/order-service/internal/handler"
	mocks "github.com/craftmarket/order-service/internal/handler/mocks"
	"github.com/craftmarket/order-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	orders    *mocks.MockOrderService
	carts     *mocks.MockCartService
	inventory *mocks.MockInventoryService
	waybills  *mocks.MockWaybillService
}

func newTestRouter(t *testing.T) (chi.Router, handlerMocks) {
	m := handlerMocks{
		orders:    mocks.NewMockOrderService(t),
		carts:     mocks.NewMockCartService(t),
		inventory: mocks.NewMockInventoryService(t),
		waybills:  mocks.NewMockWaybillService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.orders, m.carts, m.inventory, m.waybills)

	r := chi.NewRouter()
	h.Init(r)
	return r, m
}

func doRequest(t *testing.T, r chi.Router, method, path, body string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	t.Cleanup(func() { res.Body.Close() })
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{ID: 7, Status: entities.StatusProcessing}

	testCases := []struct {
		name         string
		path         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			path: "/orders/7",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrderByID(mock.Anything, int64(7)).
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"PROCESSING"`,
		},
		{
			name: "not found",
			path: "/orders/404",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrderByID(mock.Anything, int64(404)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "invalid id",
			path:         "/orders/abc",
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid order id"`,
		},
		{
			name: "internal error",
			path: "/orders/7",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrderByID(mock.Anything, int64(7)).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, body := doRequest(t, r, http.MethodGet, tc.path, "")
			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"customer": {"name": "Ivan", "phone": "+79990001122"},
		"recipient": {"name": "Anna", "phone": "+79990003344", "city": "Kazan"},
		"items": [{"sku": "RING-S", "qty": 2}],
		"payment_method_id": 1,
		"payment_type": "prepaid",
		"is_paid": true
	}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: validBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(in service.CreateOrderInput) bool {
						return len(in.Items) == 1 && in.Items[0].SKU == "RING-S" && in.IsPaid
					})).
					Return(entities.Order{ID: 1001, Status: entities.StatusNew}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":1001`,
		},
		{
			name:         "validation failure",
			body:         `{"customer": {"name": "Ivan"}, "items": []}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "malformed json",
			body:         `{`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "insufficient stock",
			body: validBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInsufficientStock).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"insufficient stock"`,
		},
		{
			name: "unknown sku",
			body: validBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrVariantNotFound).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"unknown sku"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, body := doRequest(t, r, http.MethodPost, "/orders", tc.body)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_ChangeStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
	}{
		{
			name: "status changed",
			body: `{"status": "PROCESSING", "actor": "manager-a"}`,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					ChangeStatus(mock.Anything, int64(7), entities.StatusProcessing, "manager-a").
					Return(entities.Order{ID: 7, Status: entities.StatusProcessing}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid transition",
			body: `{"status": "SHIPPED", "actor": "manager-a"}`,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					ChangeStatus(mock.Anything, int64(7), entities.StatusShipped, "manager-a").
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:         "missing actor",
			body:         `{"status": "PROCESSING"}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, _ := doRequest(t, r, http.MethodPost, "/orders/7/status", tc.body)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
		})
	}
}

func TestHTTPHandler_CreateWaybill(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.waybills.EXPECT().
			CreateWaybill(mock.Anything, int64(7), service.WaybillInput{WeightGrams: 300, Actor: "manager-a"}).
			Return(entities.Order{
				ID:       7,
				Status:   entities.StatusReadyToShip,
				Shipment: entities.Shipment{TrackingNumber: "TN-7", Status: entities.ShipmentStatusCreated},
			}, nil).Once()

		res, body := doRequest(t, r, http.MethodPost, "/orders/7/waybill",
			`{"weight_grams": 300, "actor": "manager-a"}`)
		assert.Equal(t, http.StatusCreated, res.StatusCode)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		shipment := got["shipment"].(map[string]any)
		assert.Equal(t, "TN-7", shipment["tracking_number"])
	})

	t.Run("not ready to pack", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.waybills.EXPECT().
			CreateWaybill(mock.Anything, int64(7), mock.Anything).
			Return(entities.Order{}, entities.ErrInvalidTransition).Once()

		res, _ := doRequest(t, r, http.MethodPost, "/orders/7/waybill", `{"weight_grams": 300, "actor": "x"}`)
		assert.Equal(t, http.StatusConflict, res.StatusCode)
	})
}

func TestHTTPHandler_Cart(t *testing.T) {
	t.Run("add to cart", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.carts.EXPECT().AddToCart(mock.Anything, int64(42), "RING-S", 2).Return(nil).Once()

		res, _ := doRequest(t, r, http.MethodPost, "/customers/42/cart/items", `{"sku": "RING-S", "qty": 2}`)
		assert.Equal(t, http.StatusNoContent, res.StatusCode)
	})

	t.Run("add with insufficient stock", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.carts.EXPECT().AddToCart(mock.Anything, int64(42), "RING-S", 50).
			Return(entities.ErrInsufficientStock).Once()

		res, body := doRequest(t, r, http.MethodPost, "/customers/42/cart/items", `{"sku": "RING-S", "qty": 50}`)
		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Contains(t, body, `"insufficient stock"`)
	})

	t.Run("change qty to zero removes", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.carts.EXPECT().ChangeQty(mock.Anything, int64(42), "RING-S", 0).Return(nil).Once()

		res, _ := doRequest(t, r, http.MethodPut, "/customers/42/cart/items/RING-S", `{"qty": 0}`)
		assert.Equal(t, http.StatusNoContent, res.StatusCode)
	})

	t.Run("clear cart", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.carts.EXPECT().ClearCart(mock.Anything, int64(42)).Return(nil).Once()

		res, _ := doRequest(t, r, http.MethodDelete, "/customers/42/cart", "")
		assert.Equal(t, http.StatusNoContent, res.StatusCode)
	})
}

func TestHTTPHandler_Inventory(t *testing.T) {
	t.Run("get record", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.inventory.EXPECT().GetRecord(mock.Anything, "RING-S").
			Return(entities.InventoryRecord{
				SKU:          "RING-S",
				AvailableQty: 10,
				Carted:       []entities.CartedReservation{{Qty: 2, CartID: "cart-42"}},
				Ordered:      []entities.OrderReservation{{Qty: 3, OrderID: 7}},
			}, nil).Once()

		res, body := doRequest(t, r, http.MethodGet, "/inventory/RING-S", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"available_qty":10`)
		assert.Contains(t, body, `"total_qty":15`)
	})

	t.Run("set stock below reserved", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.inventory.EXPECT().SetTotalStock(mock.Anything, "RING-S", 1).
			Return(entities.ErrConflict).Once()

		res, _ := doRequest(t, r, http.MethodPut, "/inventory/RING-S", `{"qty": 1}`)
		assert.Equal(t, http.StatusConflict, res.StatusCode)
	})

	t.Run("set stock for unknown sku", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.inventory.EXPECT().SetTotalStock(mock.Anything, "NOPE", 5).
			Return(entities.ErrSKUNotFound).Once()

		res, _ := doRequest(t, r, http.MethodPut, "/inventory/NOPE", `{"qty": 5}`)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/craftmarket/order-service/internal/entities"
	"github.com/craftmarket/order-service/internal/service"
	"github.com/craftmarket/order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	EditOrder(ctx context.Context, id int64, in service.EditOrderInput) (entities.Order, error)
	ChangeStatus(ctx context.Context, id int64, target entities.OrderStatus, actor string) (entities.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	AttachPhoto(ctx context.Context, id int64, url string) (entities.Order, error)
	MarkItemPacked(ctx context.Context, id int64, sku string, packed bool) (entities.Order, error)
}

type CartService interface {
	AddToCart(ctx context.Context, customerID int64, sku string, qty int) error
	ChangeQty(ctx context.Context, customerID int64, sku string, newQty int) error
	RemoveFromCart(ctx context.Context, customerID int64, sku string) error
	ClearCart(ctx context.Context, customerID int64) error
}

type InventoryService interface {
	SetTotalStock(ctx context.Context, sku string, qty int) error
	GetRecord(ctx context.Context, sku string) (entities.InventoryRecord, error)
}

type WaybillService interface {
	CreateWaybill(ctx context.Context, orderID int64, in service.WaybillInput) (entities.Order, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	orders    OrderService
	carts     CartService
	inventory InventoryService
	waybills  WaybillService
}

func NewHTTPHandler(
	logger *slog.Logger,
	orders OrderService,
	carts CartService,
	inventory InventoryService,
	waybills WaybillService,
) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		orders:    orders,
		carts:     carts,
		inventory: inventory,
		waybills:  waybills,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Route("/{order_id}", func(r chi.Router) {
			r.Get("/", h.GetOrderByID)
			r.Put("/", h.EditOrder)
			r.Delete("/", h.DeleteOrder)
			r.Post("/status", h.ChangeStatus)
			r.Post("/waybill", h.CreateWaybill)
			r.Post("/photos", h.AttachPhoto)
			r.Put("/items/{sku}/packed", h.MarkItemPacked)
		})
	})

	r.Route("/customers/{customer_id}/cart", func(r chi.Router) {
		r.Post("/items", h.AddToCart)
		r.Put("/items/{sku}", h.ChangeCartQty)
		r.Delete("/items/{sku}", h.RemoveFromCart)
		r.Delete("/", h.ClearCart)
	})

	r.Route("/inventory/{sku}", func(r chi.Router) {
		r.Get("/", h.GetInventoryRecord)
		r.Put("/", h.SetStock)
	})
}

func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(ctx, CreateOrderRequestToInput(req))
	if err != nil {
		h.writeOrderError(ctx, w, err, 0)
		orderCreateTotal.WithLabelValues("error").Inc()
		return
	}

	orderCreateTotal.WithLabelValues("ok").Inc()
	orderCreateDuration.Observe(time.Since(start).Seconds())
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOrderByID(ctx, id)
	if err != nil {
		h.writeOrderError(ctx, w, err, id)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) EditOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req EditOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.EditOrder(ctx, id, EditOrderRequestToInput(req))
	if err != nil {
		h.writeOrderError(ctx, w, err, id)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.orders.DeleteOrder(ctx, id); err != nil {
		h.writeOrderError(ctx, w, err, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.ChangeStatus(ctx, id, entities.OrderStatus(req.Status), req.Actor)
	if err != nil {
		h.writeOrderError(ctx, w, err, id)
		statusChangeTotal.WithLabelValues(req.Status, "error").Inc()
		return
	}

	statusChangeTotal.WithLabelValues(req.Status, "ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) CreateWaybill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req CreateWaybillRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.waybills.CreateWaybill(ctx, id, service.WaybillInput{
		WeightGrams: req.WeightGrams,
		Actor:       req.Actor,
	})
	if err != nil {
		h.writeOrderError(ctx, w, err, id)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *HTTPHandler) AttachPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req AttachPhotoRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.AttachPhoto(ctx, id, req.URL)
	if err != nil {
		h.writeOrderError(ctx, w, err, id)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) MarkItemPacked(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}
	sku := chi.URLParam(r, "sku")
	if err := h.validate.Var(sku, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req MarkPackedRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.orders.MarkItemPacked(ctx, id, sku, req.IsPacked)
	if err != nil {
		h.writeOrderError(ctx, w, err, id)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	var req CartItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.carts.AddToCart(ctx, customerID, req.SKU, req.Qty); err != nil {
		h.writeCartError(ctx, w, err, customerID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) ChangeCartQty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}
	sku := chi.URLParam(r, "sku")
	if err := h.validate.Var(sku, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req ChangeCartQtyRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.carts.ChangeQty(ctx, customerID, sku, req.Qty); err != nil {
		h.writeCartError(ctx, w, err, customerID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}
	sku := chi.URLParam(r, "sku")
	if err := h.validate.Var(sku, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.carts.RemoveFromCart(ctx, customerID, sku); err != nil {
		h.writeCartError(ctx, w, err, customerID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	if err := h.carts.ClearCart(ctx, customerID); err != nil {
		h.writeCartError(ctx, w, err, customerID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) GetInventoryRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sku := chi.URLParam(r, "sku")
	if err := h.validate.Var(sku, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	record, err := h.inventory.GetRecord(ctx, sku)
	if errors.Is(err, entities.ErrSKUNotFound) {
		utils.WriteError(w, "sku not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get inventory record", slog.Any("error", err), slog.String("sku", sku))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, RecordEntityToJSON(record), http.StatusOK)
}

func (h *HTTPHandler) SetStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sku := chi.URLParam(r, "sku")
	if err := h.validate.Var(sku, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req SetStockRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.inventory.SetTotalStock(ctx, sku, req.Qty)
	if errors.Is(err, entities.ErrSKUNotFound) {
		utils.WriteError(w, "sku not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, entities.ErrConflict) {
		utils.WriteError(w, "quantity below reserved stock", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to set stock", slog.Any("error", err), slog.String("sku", sku))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	record, err := h.inventory.GetRecord(ctx, sku)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get inventory record", slog.Any("error", err), slog.String("sku", sku))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, RecordEntityToJSON(record), http.StatusOK)
}

func (h *HTTPHandler) orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "order_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) customerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "customer_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "invalid customer id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeOrderError maps the service sentinels onto HTTP statuses.
func (h *HTTPHandler) writeOrderError(ctx context.Context, w http.ResponseWriter, err error, orderID int64) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCustomerNotFound):
		utils.WriteError(w, "customer not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrSKUNotFound), errors.Is(err, entities.ErrVariantNotFound):
		utils.WriteError(w, "unknown sku", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, "insufficient stock", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrConflict):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "operation not allowed in current state", http.StatusForbidden)
	case errors.Is(err, entities.ErrEmptyOrder):
		utils.WriteError(w, "order must contain at least one item", http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, "order request failed", slog.Any("error", err), slog.Int64("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *HTTPHandler) writeCartError(ctx context.Context, w http.ResponseWriter, err error, customerID int64) {
	switch {
	case errors.Is(err, entities.ErrCustomerNotFound):
		utils.WriteError(w, "customer not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrSKUNotFound), errors.Is(err, entities.ErrVariantNotFound):
		utils.WriteError(w, "unknown sku", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, "insufficient stock", http.StatusConflict)
	case errors.Is(err, entities.ErrConflict):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "cart request failed", slog.Any("error", err), slog.Int64("customer_id", customerID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"demo/bookorders/internal/model"
	"demo/bookorders/internal/redisx"
	"demo/bookorders/internal/service"
	"demo/bookorders/internal/validate"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

// OrderService is the slice of the orchestrator the handlers need.
type OrderService interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (model.Order, error)
	CreateOrder(ctx context.Context, userID, productID int64, quantity int, status string) (int64, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type OrdersHandler struct {
	Log   *slog.Logger
	Svc   OrderService
	Redis *redis.Client
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Get("/orders", h.listOrders)
	r.Post("/orders", h.createOrder)
	r.Get("/orders/{id}", h.getOrder)
	r.Delete("/orders/{id}", h.deleteOrder)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *OrdersHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Svc.ListOrders(r.Context())
	if err != nil {
		h.Log.Error("list orders failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch orders"})
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := validate.ID(chi.URLParam(r, "id"), "Order ID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ctx := r.Context()
	key := fmt.Sprintf(redisx.KeyOrder, id)
	if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(s))
		return
	}

	o, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Order not found"})
			return
		}
		h.Log.Error("get order failed", "order_id", id, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch order"})
		return
	}

	b, _ := json.Marshal(o)
	_ = h.Redis.Set(ctx, key, b, redisx.TTLOrder).Err()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if err := validate.CreateOrder(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	orderID, err := h.Svc.CreateOrder(r.Context(), *req.UserID, *req.ProductID, *req.Quantity, *req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrProductNotFound),
			errors.Is(err, service.ErrInsufficientStock):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, service.ErrReconciliation):
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		default:
			h.Log.Error("create order failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("Failed to create order: %v", err)})
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Order created successfully",
		"order_id": orderID,
	})
}

func (h *OrdersHandler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := validate.ID(chi.URLParam(r, "id"), "Order ID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ctx := r.Context()
	if err := h.Svc.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Order not found"})
			return
		}
		h.Log.Error("delete order failed", "order_id", id, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("Failed to delete order: %v", err)})
		return
	}

	_ = h.Redis.Del(ctx, fmt.Sprintf(redisx.KeyOrder, id)).Err()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

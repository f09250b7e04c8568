package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"demo/bookorders/internal/events"
	"demo/bookorders/internal/gateway"
	"demo/bookorders/internal/model"
	"demo/bookorders/internal/stock"
	"demo/bookorders/internal/store"
)

// Caller-visible failure kinds for create-order. The messages double as the
// API error payloads, so they keep the wording the dashboard already knows.
var (
	ErrUserNotFound      = errors.New("User not found")
	ErrProductNotFound   = errors.New("Product not found")
	ErrInsufficientStock = errors.New("Insufficient stock for the product")
	ErrReconciliation    = errors.New("Failed to update product stock. Order creation rolled back.")
)

// ErrNotFound reports an unknown order id on get/delete.
var ErrNotFound = store.ErrNotFound

// Service sequences validation, persistence and stock reconciliation for
// order creation, and passes the remaining operations through to the store.
type Service struct {
	log   *slog.Logger
	repo  store.Repository
	gw    gateway.Gateway
	stock stock.Reconciler
	pub   events.Publisher
}

func New(log *slog.Logger, repo store.Repository, gw gateway.Gateway, rec stock.Reconciler, pub events.Publisher) *Service {
	return &Service{log: log, repo: repo, gw: gw, stock: rec, pub: pub}
}

func (s *Service) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

// CreateOrder runs the create workflow: confirm the user and product exist,
// confirm stock, insert the order, then push the decremented stock level to
// the catalog. If that last write fails the just-created order is deleted so
// no order survives a failed reconciliation. The stock read and write are two
// separate remote calls with no cross-service transaction between them;
// concurrent requests for the same product can observe the same stock value.
func (s *Service) CreateOrder(ctx context.Context, userID, productID int64, quantity int, status string) (int64, error) {
	if err := s.gw.LookupUser(ctx, userID); err != nil {
		// not-found and unreachable deliberately collapse into the same
		// answer; the log line keeps them apart
		s.log.Info("user validation failed", "user_id", userID, "cause", err)
		return 0, ErrUserNotFound
	}

	product, err := s.gw.FetchProduct(ctx, productID)
	if err != nil {
		s.log.Info("product validation failed", "product_id", productID, "cause", err)
		return 0, ErrProductNotFound
	}

	if product.Stock < quantity {
		return 0, ErrInsufficientStock
	}

	orderID, err := s.repo.InsertOrder(ctx, userID, productID, quantity, status)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	if err := s.stock.ApplyStockDecrement(ctx, productID, product.Stock, quantity); err != nil {
		s.log.Error("stock reconciliation failed, rolling back order",
			"order_id", orderID, "product_id", productID, "err", err)
		if delErr := s.repo.DeleteOrder(ctx, orderID); delErr != nil {
			// order row now points at stock that was never decremented;
			// nothing here detects or repairs that divergence
			s.log.Error("compensating delete failed, order and stock have diverged",
				"order_id", orderID, "product_id", productID, "err", delErr)
		}
		s.pub.Publish(events.EventOrderRolledBack, orderID, events.OrderRolledBackPayload{
			OrderID:   orderID,
			ProductID: productID,
			Reason:    err.Error(),
		})
		return 0, ErrReconciliation
	}

	s.pub.Publish(events.EventOrderCreated, orderID, events.OrderCreatedPayload{
		OrderID:   orderID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Status:    status,
	})
	return orderID, nil
}

// DeleteOrder removes an order. Stock is intentionally not restored: deleted
// orders behave like entries struck from a sales ledger, as upstream does.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.pub.Publish(events.EventOrderDeleted, id, events.OrderDeletedPayload{OrderID: id})
	return nil
}

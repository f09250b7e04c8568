package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"demo/bookorders/internal/events"
	"demo/bookorders/internal/events/eventsmock"
	"demo/bookorders/internal/gateway"
	"demo/bookorders/internal/gateway/gatewaymock"
	"demo/bookorders/internal/model"
	"demo/bookorders/internal/stock"
	"demo/bookorders/internal/stock/stockmock"
	"demo/bookorders/internal/store"
	"demo/bookorders/internal/store/storemock"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	repo  *storemock.MockRepository
	gw    *gatewaymock.MockGateway
	stock *stockmock.MockReconciler
	pub   *eventsmock.MockPublisher
}

func newService(t *testing.T) (*Service, deps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := deps{
		repo:  storemock.NewMockRepository(ctrl),
		gw:    gatewaymock.NewMockGateway(ctrl),
		stock: stockmock.NewMockReconciler(ctrl),
		pub:   eventsmock.NewMockPublisher(ctrl),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, d.repo, d.gw, d.stock, d.pub), d
}

func TestCreateOrder_Success(t *testing.T) {
	svc, d := newService(t)
	ctx := context.Background()

	d.gw.EXPECT().LookupUser(gomock.Any(), int64(1)).Return(nil)
	d.gw.EXPECT().FetchProduct(gomock.Any(), int64(5)).Return(model.Product{ID: 5, Stock: 10}, nil)
	d.repo.EXPECT().InsertOrder(gomock.Any(), int64(1), int64(5), 2, "Pending").Return(int64(7), nil)
	d.stock.EXPECT().ApplyStockDecrement(gomock.Any(), int64(5), 10, 2).Return(nil)
	d.pub.EXPECT().Publish(events.EventOrderCreated, int64(7), gomock.Any())

	id, err := svc.CreateOrder(ctx, 1, 5, 2, "Pending")
	require.NoError(t, err)
	require.Equal(t, int64(7), id)
}

func TestCreateOrder_UserNotFound(t *testing.T) {
	svc, d := newService(t)

	d.gw.EXPECT().LookupUser(gomock.Any(), int64(9)).Return(gateway.ErrNotFound)

	_, err := svc.CreateOrder(context.Background(), 9, 5, 2, "Pending")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateOrder_UserUnreachableReportsNotFound(t *testing.T) {
	// a dead user directory and an unknown user answer identically
	svc, d := newService(t)

	d.gw.EXPECT().LookupUser(gomock.Any(), int64(1)).Return(gateway.ErrUnreachable)

	_, err := svc.CreateOrder(context.Background(), 1, 5, 2, "Pending")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateOrder_ProductNotFound(t *testing.T) {
	svc, d := newService(t)

	d.gw.EXPECT().LookupUser(gomock.Any(), int64(1)).Return(nil)
	d.gw.EXPECT().FetchProduct(gomock.Any(), int64(5)).Return(model.Product{}, gateway.ErrNotFound)

	_, err := svc.CreateOrder(context.Background(), 1, 5, 2, "Pending")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	// nothing may be persisted and no stock call issued
	svc, d := newService(t)

	d.gw.EXPECT().LookupUser(gomock.Any(), int64(1)).Return(nil)
	d.gw.EXPECT().FetchProduct(gomock.Any(), int64(5)).Return(model.Product{ID: 5, Stock: 1}, nil)

	_, err := svc.CreateOrder(context.Background(), 1, 5, 2, "Pending")
	require.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCreateOrder_InsertFailure(t *testing.T) {
	svc, d := newService(t)
	dbErr := errors.New("deadlock")

	d.gw.EXPECT().LookupUser(gomock.Any(), int64(1)).Return(nil)
	d.gw.EXPECT().FetchProduct(gomock.Any(), int64(5)).Return(model.Product{ID: 5, Stock: 10}, nil)
	d.repo.EXPECT().InsertOrder(gomock.Any(), int64(1), int64(5), 2, "Pending").Return(int64(0), dbErr)

	_, err := svc.CreateOrder(context.Background(), 1, 5, 2, "Pending")
	require.ErrorIs(t, err, dbErr)
}

func TestCreateOrder_ReconciliationFailureRollsBack(t *testing.T) {
	// no order survives a failed reconciliation
	svc, d := newService(t)

	d.gw.EXPECT().LookupUser(gomock.Any(), int64(1)).Return(nil)
	d.gw.EXPECT().FetchProduct(gomock.Any(), int64(5)).Return(model.Product{ID: 5, Stock: 10}, nil)
	d.repo.EXPECT().InsertOrder(gomock.Any(), int64(1), int64(5), 2, "Pending").Return(int64(7), nil)
	d.stock.EXPECT().ApplyStockDecrement(gomock.Any(), int64(5), 10, 2).Return(stock.ErrUpdateFailed)
	d.repo.EXPECT().DeleteOrder(gomock.Any(), int64(7)).Return(nil)
	d.pub.EXPECT().Publish(events.EventOrderRolledBack, int64(7), gomock.Any())

	_, err := svc.CreateOrder(context.Background(), 1, 5, 2, "Pending")
	require.ErrorIs(t, err, ErrReconciliation)
}

func TestCreateOrder_CompensationFailureStillReportsReconciliation(t *testing.T) {
	svc, d := newService(t)

	d.gw.EXPECT().LookupUser(gomock.Any(), int64(1)).Return(nil)
	d.gw.EXPECT().FetchProduct(gomock.Any(), int64(5)).Return(model.Product{ID: 5, Stock: 10}, nil)
	d.repo.EXPECT().InsertOrder(gomock.Any(), int64(1), int64(5), 2, "Pending").Return(int64(7), nil)
	d.stock.EXPECT().ApplyStockDecrement(gomock.Any(), int64(5), 10, 2).Return(stock.ErrUpdateFailed)
	d.repo.EXPECT().DeleteOrder(gomock.Any(), int64(7)).Return(errors.New("connection reset"))
	d.pub.EXPECT().Publish(events.EventOrderRolledBack, int64(7), gomock.Any())

	_, err := svc.CreateOrder(context.Background(), 1, 5, 2, "Pending")
	require.ErrorIs(t, err, ErrReconciliation)
}

func TestGetOrder_Passthrough(t *testing.T) {
	svc, d := newService(t)

	want := model.Order{ID: 3, UserID: 1, ProductID: 5, Quantity: 2, Status: model.StatusPending}
	d.repo.EXPECT().GetOrder(gomock.Any(), int64(3)).Return(want, nil)

	got, err := svc.GetOrder(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestGetOrder_NotFound(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().GetOrder(gomock.Any(), int64(99)).Return(model.Order{}, store.ErrNotFound)

	_, err := svc.GetOrder(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrder_PublishesEvent(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().DeleteOrder(gomock.Any(), int64(3)).Return(nil)
	d.pub.EXPECT().Publish(events.EventOrderDeleted, int64(3), gomock.Any())

	require.NoError(t, svc.DeleteOrder(context.Background(), 3))
}

func TestDeleteOrder_NotFoundNoEvent(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().DeleteOrder(gomock.Any(), int64(99)).Return(store.ErrNotFound)

	err := svc.DeleteOrder(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
}

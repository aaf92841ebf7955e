package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/application/ledger"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type OrderLedgerMock struct{ mock.Mock }

func (m *OrderLedgerMock) CreateOrder(ctx context.Context, name string, deliveryFee kernel.Money, allocations []*order.Allocation) (*order.Order, error) {
	args := m.Called(ctx, name, deliveryFee, allocations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *OrderLedgerMock) UpdateOrder(ctx context.Context, id kernel.UUID, patch ledger.OrderPatch) (*order.Order, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *OrderLedgerMock) DeleteOrder(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OrderLedgerMock) UpdateLineItem(ctx context.Context, id kernel.LineItemID, patch order.ProductPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *OrderLedgerMock) DeleteLineItem(ctx context.Context, id kernel.LineItemID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OrderLedgerMock) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *OrderLedgerMock) ReplaceAll(ctx context.Context, snapshots []order.Snapshot, backupLabel string) error {
	args := m.Called(ctx, snapshots, backupLabel)
	return args.Error(0)
}

func (m *OrderLedgerMock) Len() int {
	args := m.Called()
	return args.Int(0)
}

type BackupServiceMock struct{ mock.Mock }

func (m *BackupServiceMock) Create(ctx context.Context, snapshot []order.Snapshot, label string) (*ports.BackupRecord, error) {
	args := m.Called(ctx, snapshot, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.BackupRecord), args.Error(1)
}

func (m *BackupServiceMock) List(ctx context.Context) ([]ports.BackupRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.BackupRecord), args.Error(1)
}

func (m *BackupServiceMock) Restore(ctx context.Context, id string) ([]order.Snapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Snapshot), args.Error(1)
}

func (m *BackupServiceMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func money(t *testing.T, value float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(value)
	require.NoError(t, err)
	return m
}

func allocations(t *testing.T) []*order.Allocation {
	t.Helper()
	price := money(t, 5)
	p, err := order.NewProduct(kernel.NewUUID(), "Pizza", 2, price)
	require.NoError(t, err)
	a, err := order.NewAllocation("Amy", []*order.Product{p})
	require.NoError(t, err)
	return []*order.Allocation{a}
}

func lunchOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Lunch", money(t, 10), time.Now(), allocations(t))
	require.NoError(t, err)
	return o
}

func lineItemID(t *testing.T, o *order.Order) kernel.LineItemID {
	t.Helper()
	a := o.Allocations()[0]
	id, err := kernel.NewLineItemID(o.ID(), a.Employee(), a.Products()[0].ID())
	require.NoError(t, err)
	return id
}

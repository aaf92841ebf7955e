// Package ledger owns the canonical order collection. It is the only place
// orders are created, mutated and deleted; domain services and queries read
// the collection, and the storage collaborator receives a full snapshot after
// every committed mutation.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/kernel"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/ports"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"
)

// OrderPatch carries the optional field updates for an order. Nil fields are
// left unchanged; the order's id and timestamp are never touched.
type OrderPatch struct {
	Name        *string
	DeliveryFee *kernel.Money
	Allocations []*order.Allocation
}

// OrderStore owns the ordered collection of orders.
//
// Mutations run under one mutex, so every operation observes and produces a
// consistent collection; the three-level delete cascade in particular is one
// atomic transform. After each committed mutation the full collection is
// saved through the storage port; a failing save is logged and the in-memory
// state stays authoritative for the rest of the session.
type OrderStore struct {
	mu       sync.Mutex
	orders   []*order.Order
	revision uint64

	storage ports.Storage
	backups ports.BackupService
	logger  *slog.Logger
}

// NewOrderStore creates an empty store writing through the given storage and
// backup collaborators.
func NewOrderStore(storage ports.Storage, backups ports.BackupService, logger *slog.Logger) *OrderStore {
	return &OrderStore{
		storage: storage,
		backups: backups,
		logger:  logger.With("component", "order_store"),
	}
}

// Hydrate loads the persisted collection. Entries that no longer pass domain
// validation are skipped with a warning rather than blocking startup.
func (s *OrderStore) Hydrate(ctx context.Context) error {
	var snapshots []order.Snapshot
	if err := s.storage.Load(ctx, ports.OrdersStorageKey, &snapshots); err != nil {
		return fmt.Errorf("load order collection: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = s.orders[:0]
	for _, snapshot := range snapshots {
		o, err := order.FromSnapshot(snapshot)
		if err != nil {
			s.logger.WarnContext(ctx, "Skipping invalid persisted order", "order_id", snapshot.ID, "error", err)
			continue
		}
		s.orders = append(s.orders, o)
	}

	s.logger.InfoContext(ctx, "Order collection hydrated", "orders", len(s.orders))
	return nil
}

// CreateOrder validates and appends a new order, assigning its id and
// timestamp, and persists the collection.
func (s *OrderStore) CreateOrder(ctx context.Context, name string, deliveryFee kernel.Money, allocations []*order.Allocation) (*order.Order, error) {
	o, err := order.NewOrder(kernel.NewUUID(), name, deliveryFee, time.Now().UTC(), allocations)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, o)
	s.commit(ctx)
	return o, nil
}

// UpdateOrder merges the patch into the order with the given id. Fails with
// an object not found error when the id does not resolve; validation
// failures leave the order unchanged.
func (s *OrderStore) UpdateOrder(ctx context.Context, id kernel.UUID, patch OrderPatch) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	// Reject before mutating anything, so a failed update is all-or-nothing.
	if patch.Name != nil && *patch.Name == "" {
		return nil, errs.NewValueIsRequiredError("order name")
	}
	if patch.Allocations != nil {
		if err := o.ReplaceAllocations(patch.Allocations); err != nil {
			return nil, err
		}
	}
	if patch.Name != nil {
		if err := o.Rename(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.DeliveryFee != nil {
		o.ChangeDeliveryFee(*patch.DeliveryFee)
	}

	s.commit(ctx)
	return o, nil
}

// DeleteOrder removes the order outright. Deleting an absent order is a
// no-op, not an error.
func (s *OrderStore) DeleteOrder(ctx context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID().IsEqual(id) {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.commit(ctx)
			return nil
		}
	}
	return nil
}

// UpdateLineItem merges the patch into the product addressed by the
// composite id and recomputes its cached total price. Fails with an object
// not found error when the order, allocation or product does not resolve.
func (s *OrderStore) UpdateLineItem(ctx context.Context, id kernel.LineItemID, patch order.ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id.OrderID())
	if o == nil {
		return errs.NewObjectNotFoundError("order", id.OrderID().String())
	}

	if err := o.UpdateProduct(id.Employee(), id.ProductID(), patch); err != nil {
		return err
	}

	s.commit(ctx)
	return nil
}

// DeleteLineItem removes the product addressed by the composite id and runs
// the cascade to completion: an emptied allocation is pruned, and an order
// left without allocations vanishes, all in one committed update. Deleting
// an already absent line item is a no-op, not an error.
func (s *OrderStore) DeleteLineItem(ctx context.Context, id kernel.LineItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id.OrderID())
	if o == nil {
		return nil
	}

	if !o.RemoveProduct(id.Employee(), id.ProductID()) {
		return nil
	}

	if o.IsEmpty() {
		for i, candidate := range s.orders {
			if candidate.IsEqual(o) {
				s.orders = append(s.orders[:i], s.orders[i+1:]...)
				break
			}
		}
	}

	s.commit(ctx)
	return nil
}

// ClearAll empties the collection after capturing a backup. The clear
// proceeds even when the backup collaborator is unavailable.
func (s *OrderStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.backupLocked(ctx, fmt.Sprintf("Before_clear_%d_items", len(s.orders)))
	s.orders = nil
	s.commit(ctx)
	return nil
}

// ReplaceAll swaps the whole collection for the given snapshots, capturing a
// backup of the current state first. The swap is all-or-nothing: when any
// snapshot fails validation the current collection stays untouched.
func (s *OrderStore) ReplaceAll(ctx context.Context, snapshots []order.Snapshot, backupLabel string) error {
	imported := make([]*order.Order, 0, len(snapshots))
	for _, snapshot := range snapshots {
		o, err := order.FromSnapshot(snapshot)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("imported order "+snapshot.ID, err)
		}
		imported = append(imported, o)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.backupLocked(ctx, backupLabel)
	s.orders = imported
	s.commit(ctx)
	return nil
}

// ListOrders returns the collection in store order, most recently created
// last.
func (s *OrderStore) ListOrders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*order.Order(nil), s.orders...)
}

// Snapshots renders the whole collection in its serializable form.
func (s *OrderStore) Snapshots() []order.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotsLocked()
}

// Len returns the number of orders in the collection.
func (s *OrderStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.orders)
}

// Revision returns a counter that increases with every committed mutation.
// The backup job uses it to snapshot only when something changed.
func (s *OrderStore) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.revision
}

func (s *OrderStore) snapshotsLocked() []order.Snapshot {
	snapshots := make([]order.Snapshot, 0, len(s.orders))
	for _, o := range s.orders {
		snapshots = append(snapshots, o.ToSnapshot())
	}
	return snapshots
}

// commit records a completed mutation and writes the collection through the
// storage port. Persistence failure never rolls the mutation back.
func (s *OrderStore) commit(ctx context.Context) {
	s.revision++
	if err := s.storage.Save(ctx, ports.OrdersStorageKey, s.snapshotsLocked()); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist order collection", "error", err)
	}
}

// backupLocked captures a labeled snapshot before a destructive operation.
// An empty collection is not worth a backup, and a failing backup service
// only produces a warning.
func (s *OrderStore) backupLocked(ctx context.Context, label string) {
	if len(s.orders) == 0 {
		return
	}
	if _, err := s.backups.Create(ctx, s.snapshotsLocked(), label); err != nil {
		s.logger.WarnContext(ctx, "Failed to create backup", "label", label, "error", err)
	}
}

func (s *OrderStore) find(id kernel.UUID) *order.Order {
	for _, o := range s.orders {
		if o.ID().IsEqual(id) {
			return o
		}
	}
	return nil
}

package ports

import (
	"context"
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
)

// BackupRecord is one labeled snapshot of the order collection.
type BackupRecord struct {
	ID        string           `json:"id"`
	Label     string           `json:"name"`
	Timestamp time.Time        `json:"timestamp"`
	Data      []order.Snapshot `json:"data"`
	Version   string           `json:"version"`
}

// BackupService captures and restores snapshots of the order collection.
// The store invokes Create before destructive bulk operations; a failing
// backup service must never block the operation itself.
type BackupService interface {
	// Create stores a new labeled snapshot and returns its record. Only the
	// most recent snapshots are retained; older ones are dropped.
	Create(ctx context.Context, snapshot []order.Snapshot, label string) (*BackupRecord, error)

	// List returns all retained backup records, oldest first.
	List(ctx context.Context) ([]BackupRecord, error)

	// Restore returns the snapshot stored under the given backup id.
	Restore(ctx context.Context, id string) ([]order.Snapshot, error)

	// Delete removes the backup with the given id. Removing an absent backup
	// is not an error.
	Delete(ctx context.Context, id string) error
}

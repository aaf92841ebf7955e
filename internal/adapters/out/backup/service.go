// Package backup stores labeled snapshots of the order collection as one
// keyed blob, keeping only the most recent entries.
package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/ports"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"

	"github.com/google/uuid"
)

// recordVersion tags stored backups so a future format change can migrate
// old entries.
const recordVersion = "1.0"

// maxBackups bounds the ring; the oldest entries are dropped first.
const maxBackups = 10

// StorageBackupService implements the backup port on top of the keyed blob
// storage. The whole ring lives under one key and is rewritten on every
// change.
type StorageBackupService struct {
	storage ports.Storage
}

// NewStorageBackupService creates a backup service over the given storage.
func NewStorageBackupService(storage ports.Storage) *StorageBackupService {
	return &StorageBackupService{storage: storage}
}

// Create appends a new backup with the given label and drops the oldest
// entries beyond the ring size.
func (s *StorageBackupService) Create(ctx context.Context, snapshot []order.Snapshot, label string) (*ports.BackupRecord, error) {
	if label == "" {
		return nil, errs.NewValueIsRequiredError("backup label")
	}

	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	record := ports.BackupRecord{
		ID:        uuid.NewString(),
		Label:     label,
		Timestamp: time.Now().UTC(),
		Data:      snapshot,
		Version:   recordVersion,
	}

	records = append(records, record)
	if len(records) > maxBackups {
		records = records[len(records)-maxBackups:]
	}

	if err := s.storage.Save(ctx, ports.BackupsStorageKey, records); err != nil {
		return nil, fmt.Errorf("save backup ring: %w", err)
	}

	return &record, nil
}

// List returns the stored backups, oldest first.
func (s *StorageBackupService) List(ctx context.Context) ([]ports.BackupRecord, error) {
	return s.load(ctx)
}

// Restore returns the order snapshots held by the backup with the given id.
func (s *StorageBackupService) Restore(ctx context.Context, id string) ([]order.Snapshot, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.ID == id {
			return record.Data, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("backup", id)
}

// Delete removes the backup with the given id. Deleting an absent backup is
// a no-op.
func (s *StorageBackupService) Delete(ctx context.Context, id string) error {
	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, record := range records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(records) {
		return nil
	}

	if err := s.storage.Save(ctx, ports.BackupsStorageKey, kept); err != nil {
		return fmt.Errorf("save backup ring: %w", err)
	}
	return nil
}

func (s *StorageBackupService) load(ctx context.Context) ([]ports.BackupRecord, error) {
	var records []ports.BackupRecord
	if err := s.storage.Load(ctx, ports.BackupsStorageKey, &records); err != nil {
		return nil, fmt.Errorf("load backup ring: %w", err)
	}
	return records, nil
}

package backup_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/adapters/out/backup"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	blobs   map[string][]byte
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{blobs: map[string][]byte{}}
}

func (f *fakeStorage) Load(_ context.Context, key string, dest any) error {
	blob, ok := f.blobs[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(blob, dest)
}

func (f *fakeStorage) Save(_ context.Context, key string, value any) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.blobs[key] = blob
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	delete(f.blobs, key)
	return nil
}

func snapshot(name string) []order.Snapshot {
	return []order.Snapshot{{
		ID:        "a2f1d8a4-9f1b-4c93-8a1d-3f2a6c1b5e90",
		Name:      name,
		Timestamp: time.Now().UTC(),
	}}
}

func TestStorageBackupServiceCreate(t *testing.T) {
	t.Run("should store labeled record with version", func(t *testing.T) {
		service := backup.NewStorageBackupService(newFakeStorage())

		record, err := service.Create(context.Background(), snapshot("Lunch"), "Auto_1_items")

		require.NoError(t, err)
		assert.NotEmpty(t, record.ID)
		assert.Equal(t, "Auto_1_items", record.Label)
		assert.Equal(t, "1.0", record.Version)

		records, err := service.List(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Lunch", records[0].Data[0].Name)
	})

	t.Run("should keep only the newest ten", func(t *testing.T) {
		service := backup.NewStorageBackupService(newFakeStorage())

		for i := 0; i < 12; i++ {
			_, err := service.Create(context.Background(), snapshot("Lunch"), fmt.Sprintf("Auto_%d_items", i))
			require.NoError(t, err)
		}

		records, err := service.List(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 10)
		assert.Equal(t, "Auto_2_items", records[0].Label)
		assert.Equal(t, "Auto_11_items", records[9].Label)
	})

	t.Run("should reject empty label", func(t *testing.T) {
		service := backup.NewStorageBackupService(newFakeStorage())

		_, err := service.Create(context.Background(), snapshot("Lunch"), "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should propagate storage failure", func(t *testing.T) {
		storage := newFakeStorage()
		storage.saveErr = errors.New("disk full")
		service := backup.NewStorageBackupService(storage)

		_, err := service.Create(context.Background(), snapshot("Lunch"), "Auto_1_items")
		require.Error(t, err)
	})
}

func TestStorageBackupServiceRestore(t *testing.T) {
	t.Run("should return snapshots of stored backup", func(t *testing.T) {
		service := backup.NewStorageBackupService(newFakeStorage())
		record, err := service.Create(context.Background(), snapshot("Lunch"), "Auto_1_items")
		require.NoError(t, err)

		restored, err := service.Restore(context.Background(), record.ID)

		require.NoError(t, err)
		require.Len(t, restored, 1)
		assert.Equal(t, "Lunch", restored[0].Name)
	})

	t.Run("should fail for unknown id", func(t *testing.T) {
		service := backup.NewStorageBackupService(newFakeStorage())

		_, err := service.Restore(context.Background(), "missing")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestStorageBackupServiceDelete(t *testing.T) {
	t.Run("should remove stored backup", func(t *testing.T) {
		service := backup.NewStorageBackupService(newFakeStorage())
		record, err := service.Create(context.Background(), snapshot("Lunch"), "Auto_1_items")
		require.NoError(t, err)

		require.NoError(t, service.Delete(context.Background(), record.ID))

		records, err := service.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("should treat unknown id as no-op", func(t *testing.T) {
		service := backup.NewStorageBackupService(newFakeStorage())

		require.NoError(t, service.Delete(context.Background(), "missing"))
	})
}

// Package blobstore persists the application's keyed JSON blobs in
// PostgreSQL. The order collection and the backup ring are each stored whole
// under a single key, so a save replaces the previous value atomically.
package blobstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlobDTO represents one keyed JSON document in the blobs table.
type BlobDTO struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for blobs.
func (BlobDTO) TableName() string {
	return "blobs"
}

// GormBlobStore implements the storage port using GORM.
type GormBlobStore struct {
	db *gorm.DB
}

// NewGormBlobStore creates a new GORM blob store.
func NewGormBlobStore(db *gorm.DB) *GormBlobStore {
	return &GormBlobStore{db: db}
}

// Load reads the blob stored under key and decodes it into dest. A missing
// or undecodable blob leaves dest untouched and returns nil, so callers
// start from their zero state instead of failing.
func (s *GormBlobStore) Load(ctx context.Context, key string, dest any) error {
	var dto BlobDTO
	if err := s.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if !json.Valid(dto.Value) {
		return nil
	}
	if err := json.Unmarshal(dto.Value, dest); err != nil {
		return nil
	}
	return nil
}

// Save encodes value and upserts it under key.
func (s *GormBlobStore) Save(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	dto := BlobDTO{
		Key:       key,
		Value:     encoded,
		UpdatedAt: time.Now().UTC(),
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&dto).Error
}

// Delete removes the blob stored under key. Deleting an absent key is a
// no-op.
func (s *GormBlobStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&BlobDTO{}, "key = ?", key).Error
}

package ports

import (
	"context"
)

// Storage keys for the logical collections. Each key maps to one JSON blob.
const (
	OrdersStorageKey  = "foodOrders"
	BackupsStorageKey = "dataBackups"
)

// Storage defines the keyed blob persistence contract the core writes
// through. Each key holds a single JSON document for one logical collection.
//
// Persistence is best-effort from the core's point of view: the in-memory
// model stays authoritative for the session, and callers log rather than roll
// back when Save fails.
type Storage interface {
	// Load decodes the blob stored under key into dest. When the key is
	// absent or the stored payload does not decode, dest is left untouched
	// and no error is returned; the caller's default value stands.
	Load(ctx context.Context, key string, dest any) error

	// Save encodes value as JSON and stores it under key, replacing any
	// previous blob.
	Save(ctx context.Context, key string, value any) error

	// Delete removes the blob stored under key. Removing an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error
}

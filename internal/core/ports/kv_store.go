package ports

import "context"

// Slot keys for the two persisted stores. Values are JSON-serialized text
// with no schema versioning.
const (
	SessionKey  = "user"
	ProfilesKey = "custom_profiles"
)

// KVStore is the narrow storage interface injected into services in place of
// ambient global slots. Get returns domain.ErrKeyNotFound when the slot holds
// no value. Writes are whole-value: every mutation rewrites the slot.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

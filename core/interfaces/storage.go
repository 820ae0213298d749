// ABOUTME: Durable key-value storage interface for workflow persistence
// ABOUTME: Implementations can be in-memory, Redis or SQLite

package interfaces

import "context"

// KVStorage is the durable storage boundary for the persisted projection of
// workflow state. Implementations must treat values as opaque bytes.
//
// Example usage:
//
//	data, err := storage.Get(ctx, "workflow:abc123")
//	if err != nil {
//		// handle missing key
//	}
//	err = storage.Set(ctx, "workflow:abc123", data)
type KVStorage interface {
	// Get retrieves the value stored under key.
	// Returns an error if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting a missing key
	// returns nil.
	Delete(ctx context.Context, key string) error
}

// ABOUTME: In-memory KVStorage implementation backed by go-cache
// ABOUTME: Suitable for tests and single-process deployments without durability

package memory

import (
	"context"
	"errors"

	gocache "github.com/patrickmn/go-cache"
)

// Client implements the KVStorage interface in process memory.
type Client struct {
	cache *gocache.Cache
}

// NewMemoryStorage creates a new in-memory storage client.
func NewMemoryStorage() *Client {
	return &Client{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a value by key.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.cache.Get(key)
	if !ok {
		return nil, errors.New("key not found")
	}

	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value under key, replacing any previous value.
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	c.cache.Set(key, stored, gocache.NoExpiration)
	return nil
}

// Delete removes a value by key. Missing keys are not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

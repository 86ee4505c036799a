package domain

import (
	"context"
	"time"
)

// CacheError is returned by Cache implementations for cache-level conditions.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss reports that a key is absent or expired.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache stores encoded embeddings keyed by source, model and text hash.
type Cache interface {
	// Get returns ErrCacheMiss when key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key; a zero expiration keeps it forever.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

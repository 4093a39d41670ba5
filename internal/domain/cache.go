package domain

import (
	"context"
	"time"
)

// Cache is the port for the TTL store that keeps question sets and answer
// submissions between requests. Implementations return ErrCacheMiss when a key
// is absent.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

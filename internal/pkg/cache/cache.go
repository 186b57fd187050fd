package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get on a cache miss
var ErrNotFound = errors.New("cache: key not found")

// DefaultTTL applies when Set is called with a zero ttl
const DefaultTTL = time.Minute

// Cache stores JSON encodable values by key.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

type noopCache struct{}

// NewNoop returns a cache that never stores anything; used when Redis is not configured.
func NewNoop() Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, interface{}) error { return ErrNotFound }

func (noopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (noopCache) Delete(context.Context, ...string) error { return nil }

func (noopCache) Close() error { return nil }

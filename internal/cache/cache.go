package cache

import (
	"context"
	"time"
)

// Cache stores JSON values by key. A miss is (false, nil).
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

func ProfileKey(userID string) string { return "profile:" + userID }

// ReadThrough returns the cached value at key, or calls load and caches
// its result for ttl. Cache failures are reported to warn and never fail
// the read.
func ReadThrough[T any](ctx context.Context, c Cache, key string, ttl time.Duration,
	load func(context.Context) (*T, error), warn func(op string, err error)) (*T, error) {
	var cached T
	hit, err := c.GetJSON(ctx, key, &cached)
	if err != nil && warn != nil {
		warn("read", err)
	}
	if hit {
		return &cached, nil
	}

	v, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.SetJSON(ctx, key, v, ttl); err != nil && warn != nil {
		warn("write", err)
	}
	return v, nil
}

// Nop is used when no Redis is configured; every read misses.
type Nop struct{}

func (Nop) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (Nop) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (Nop) Del(context.Context, ...string) error                      { return nil }

// Package cache provides the catalog service's cache layer: the backing
// store abstraction, the key naming scheme, and the invalidation
// coordinator.
//
// The cache is advisory. The persistent store is always the source of
// truth, and every Store error is absorbed by callers as a miss (reads) or
// a no-op (writes), so a degraded cache backend degrades latency, never
// correctness.
package cache

import (
	"context"
	"errors"
	"time"
)

// TTL policy. Collection caches expire faster than item caches because
// their invalidation surface is larger; the reset-token TTL is a distinct,
// security-sensitive usage.
const (
	ListTTL       = 2 * time.Hour
	ItemTTL       = 24 * time.Hour
	ResetTokenTTL = 2 * time.Minute
)

// ErrMiss is returned by Get/GetHash when the key (or field) is absent.
var ErrMiss = errors.New("cache: miss")

// Store is a key-value store with per-key expiry. Values are opaque
// serialized JSON; the store performs no interpretation.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	GetHash(ctx context.Context, key, field string) (string, error)
	SetHash(ctx context.Context, key, field, value string, ttl time.Duration) error

	// Delete removes keys. It is idempotent: absent keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern, e.g.
	// "product:list:store-1:*".
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}

// NoopStore misses every read and drops every write. Used when caching is
// disabled by feature flag.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (*NoopStore) Get(context.Context, string) (string, error) { return "", ErrMiss }

func (*NoopStore) Set(context.Context, string, string, time.Duration) error { return nil }

func (*NoopStore) GetHash(context.Context, string, string) (string, error) { return "", ErrMiss }

func (*NoopStore) SetHash(context.Context, string, string, string, time.Duration) error {
	return nil
}

func (*NoopStore) Delete(context.Context, ...string) error { return nil }

func (*NoopStore) DeletePattern(context.Context, string) error { return nil }

func (*NoopStore) Ping(context.Context) error { return nil }

var (
	_ Store = (*NoopStore)(nil)
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)

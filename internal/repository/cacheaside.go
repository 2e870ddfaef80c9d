package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
)

// Generic cache-aside plumbing shared by every repository.
//
// Cache errors are absorbed here, exactly once, instead of at every call
// site: a failed read is a miss, a failed write-back is a no-op, and the
// persistent store result is always returned to the caller untouched.
// Fetch errors (including not-found) propagate unchanged, and nothing is
// cached for them, so a transient outage is never stored as "no data".

// itemThrough is the by-id read path. Item slots are hash entries keyed
// ItemKey(kind, id) with the kind as field, expiring after ItemTTL.
func itemThrough[T any](ctx context.Context, c cache.Store, logger *zap.Logger, kind cache.Kind, id string, fetch func(context.Context) (*T, error)) (*T, error) {
	key := cache.ItemKey(kind, id)

	raw, err := c.GetHash(ctx, key, string(kind))
	if err == nil {
		var v T
		if uerr := json.Unmarshal([]byte(raw), &v); uerr == nil {
			logger.Debug("cache hit", zap.String("key", key))
			return &v, nil
		}
		logger.Warn("corrupt cache entry", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	writeItem(ctx, c, logger, kind, id, v)
	return v, nil
}

// writeItem populates the by-id slot, used both for read-miss fills and
// for write-through after a committed mutation.
func writeItem[T any](ctx context.Context, c cache.Store, logger *zap.Logger, kind cache.Kind, id string, v *T) {
	key := cache.ItemKey(kind, id)
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.SetHash(ctx, key, string(kind), string(data), cache.ItemTTL); err != nil {
		logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// listThrough is the collection read path: plain scalar slots expiring
// after ListTTL. Callers that must fail on empty results do so inside
// fetch, which keeps empties out of the cache for those views.
func listThrough[T any](ctx context.Context, c cache.Store, logger *zap.Logger, key string, fetch func(context.Context) (T, error)) (T, error) {
	return scalarThrough(ctx, c, logger, key, cache.ListTTL, fetch)
}

func scalarThrough[T any](ctx context.Context, c cache.Store, logger *zap.Logger, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	raw, err := c.Get(ctx, key)
	if err == nil {
		var v T
		if uerr := json.Unmarshal([]byte(raw), &v); uerr == nil {
			logger.Debug("cache hit", zap.String("key", key))
			return v, nil
		}
		logger.Warn("corrupt cache entry", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	var zero T
	v, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if data, merr := json.Marshal(v); merr != nil {
		logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(merr))
	} else if serr := c.Set(ctx, key, string(data), ttl); serr != nil {
		logger.Warn("cache write failed", zap.String("key", key), zap.Error(serr))
	}
	return v, nil
}

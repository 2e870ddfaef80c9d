package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/config"
)

// RedisStore implements Store on a shared, long-lived Redis client.
//
// Every operation runs under a short per-op timeout and a circuit breaker,
// so a degraded backend turns into fast misses instead of request latency.
type RedisStore struct {
	client    *redis.Client
	opTimeout time.Duration
	breaker   *gobreaker.CircuitBreaker
	logger    *zap.Logger
}

// NewRedisStore creates a Redis-backed cache store.
func NewRedisStore(cfg config.RedisConfig, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	settings := gobreaker.Settings{
		Name:    "redis-cache",
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A miss is an answer from a healthy backend, and a canceled
		// caller is not the backend's fault; neither may trip the
		// breaker, or a cold cache would skip the deletes that keep
		// it consistent.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrMiss) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("cache breaker state change",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &RedisStore{
		client:    client,
		opTimeout: cfg.OpTimeout,
		breaker:   gobreaker.NewCircuitBreaker(settings),
		logger:    logger.Named("redis-cache"),
	}
}

// do runs one cache operation under the breaker and the per-op timeout.
func (s *RedisStore) do(ctx context.Context, op func(ctx context.Context) (any, error)) (any, error) {
	return s.breaker.Execute(func() (any, error) {
		opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
		defer cancel()
		return op(opCtx)
	})
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.do(ctx, func(ctx context.Context) (any, error) {
		v, err := s.client.Get(ctx, key).Result()
		if err == redis.Nil {
			return "", ErrMiss
		}
		return v, err
	})
	if err != nil {
		return "", err
	}
	return val.(string), nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	_, err := s.do(ctx, func(ctx context.Context) (any, error) {
		return nil, s.client.Set(ctx, key, value, ttl).Err()
	})
	return err
}

func (s *RedisStore) GetHash(ctx context.Context, key, field string) (string, error) {
	val, err := s.do(ctx, func(ctx context.Context) (any, error) {
		v, err := s.client.HGet(ctx, key, field).Result()
		if err == redis.Nil {
			return "", ErrMiss
		}
		return v, err
	})
	if err != nil {
		return "", err
	}
	return val.(string), nil
}

func (s *RedisStore) SetHash(ctx context.Context, key, field, value string, ttl time.Duration) error {
	_, err := s.do(ctx, func(ctx context.Context) (any, error) {
		if err := s.client.HSet(ctx, key, field, value).Err(); err != nil {
			return nil, err
		}
		return nil, s.client.Expire(ctx, key, ttl).Err()
	})
	return err
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.do(ctx, func(ctx context.Context) (any, error) {
		return nil, s.client.Del(ctx, keys...).Err()
	})
	return err
}

func (s *RedisStore) DeletePattern(ctx context.Context, pattern string) error {
	_, err := s.do(ctx, func(ctx context.Context) (any, error) {
		iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return nil, nil
		}
		s.logger.Debug("cache pattern invalidated",
			zap.String("pattern", pattern),
			zap.Int("keys_deleted", len(keys)))
		return nil, s.client.Del(ctx, keys...).Err()
	})
	return err
}

func (s *RedisStore) Ping(ctx context.Context) error {
	_, err := s.do(ctx, func(ctx context.Context) (any, error) {
		return nil, s.client.Ping(ctx).Err()
	})
	return err
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

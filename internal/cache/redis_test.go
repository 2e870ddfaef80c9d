package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/config"
)

func newBreakerStore() *RedisStore {
	return NewRedisStore(config.RedisConfig{
		Host:            "localhost",
		Port:            6379,
		OpTimeout:       250 * time.Millisecond,
		BreakerCooldown: time.Minute,
	}, zap.NewNop())
}

func TestBreakerStaysClosedOnMisses(t *testing.T) {
	s := newBreakerStore()
	ctx := context.Background()

	// A cold cache (or a fresh invalidation burst) produces long runs of
	// misses; none of them may open the breaker.
	for i := 0; i < 20; i++ {
		if _, err := s.do(ctx, func(ctx context.Context) (any, error) {
			return "", ErrMiss
		}); !errors.Is(err, ErrMiss) {
			t.Fatalf("op %d: got %v, want ErrMiss", i, err)
		}
	}

	executed := false
	if _, err := s.do(ctx, func(ctx context.Context) (any, error) {
		executed = true
		return nil, nil
	}); err != nil {
		t.Fatalf("op after misses failed: %v", err)
	}
	if !executed {
		t.Fatal("breaker opened on misses: write skipped")
	}
}

func TestBreakerOpensOnConsecutiveFailures(t *testing.T) {
	s := newBreakerStore()
	ctx := context.Background()
	backendDown := errors.New("connection refused")

	for i := 0; i < 5; i++ {
		if _, err := s.do(ctx, func(ctx context.Context) (any, error) {
			return nil, backendDown
		}); !errors.Is(err, backendDown) {
			t.Fatalf("op %d: got %v, want backend error", i, err)
		}
	}

	executed := false
	_, err := s.do(ctx, func(ctx context.Context) (any, error) {
		executed = true
		return nil, nil
	})
	if err == nil {
		t.Fatal("expected open-breaker error after consecutive failures")
	}
	if executed {
		t.Fatal("op executed while breaker should be open")
	}
}

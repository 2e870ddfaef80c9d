package cache

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Op is the mutation verb that triggered an invalidation.
type Op string

const (
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpPayment Op = "payment"
)

// Mutation describes a committed persistent-store write. The coordinator
// maps it to the full set of cache keys that may now be stale, including
// keys owned by other entity families.
type Mutation struct {
	Kind      Kind
	Op        Op
	ID        string
	StoreID   string
	UserID    string
	ProductID string
}

// keyRule derives affected keys (or glob patterns) from one mutation.
type keyRule func(m Mutation) []string

// rules is the single source of truth for "mutation kind -> affected
// keys". Entries ending in '*' are glob patterns handled by
// Store.DeletePattern; the rest are exact deletes.
//
// Order mutations fan out into the revenue and sales slots because both
// are derived from paid orders. Revenue date- and graph-keyed entries have no
// finite key set and rely on TTL expiry instead; the graph slot is known,
// so it is purged too. Catalog entities carry no denormalized copies of
// each other (reads join at the persistent store), so no cross-catalog
// fan-out is needed.
var rules = map[Kind][]keyRule{
	KindStore: {
		func(m Mutation) []string { return []string{ItemKey(KindStore, m.ID)} },
		// Deleting a store orphans every slot scoped to it.
		func(m Mutation) []string {
			if m.Op != OpDelete {
				return nil
			}
			return []string{
				ListKeyPattern(KindBillboard, m.ID),
				GlobalListKey(KindBillboard),
				ListKeyPattern(KindCategory, m.ID),
				ListKeyPattern(KindColor, m.ID),
				ListKeyPattern(KindSize, m.ID),
				ListKeyPattern(KindProduct, m.ID),
				ListKeyPattern(KindOrder, m.ID),
				RevenueKey(m.ID, "") + "*",
				SalesKey(m.ID, "") + "*",
			}
		},
	},
	KindBillboard: {
		func(m Mutation) []string {
			return []string{
				ItemKey(KindBillboard, m.ID),
				ListKey(KindBillboard, m.StoreID),
				GlobalListKey(KindBillboard),
			}
		},
	},
	KindCategory: {
		func(m Mutation) []string {
			return []string{
				ItemKey(KindCategory, m.ID),
				ListKey(KindCategory, m.StoreID),
				ListKeyPattern(KindCategory, m.StoreID),
			}
		},
	},
	KindColor: {
		func(m Mutation) []string {
			return []string{ItemKey(KindColor, m.ID), ListKey(KindColor, m.StoreID)}
		},
	},
	KindSize: {
		func(m Mutation) []string {
			return []string{ItemKey(KindSize, m.ID), ListKey(KindSize, m.StoreID)}
		},
	},
	KindProduct: {
		func(m Mutation) []string {
			return []string{
				ItemKey(KindProduct, m.ID),
				ListKeyPattern(KindProduct, m.StoreID),
			}
		},
	},
	KindOrder: {
		func(m Mutation) []string {
			return []string{
				ItemKey(KindOrder, m.ID),
				ListKey(KindOrder, m.StoreID),
			}
		},
		func(m Mutation) []string {
			if m.UserID == "" {
				return nil
			}
			return []string{
				UserOrdersKey(m.UserID, OrderStatusPending),
				UserOrdersKey(m.UserID, OrderStatusDelivered),
			}
		},
		revenueKeys,
		salesKeys,
	},
	KindReview: {
		func(m Mutation) []string {
			keys := []string{ItemKey(KindReview, m.ID), UserReviewsKey(m.UserID)}
			if m.ProductID != "" {
				keys = append(keys, ReviewPageKeyPattern(m.ProductID))
			}
			return keys
		},
	},
}

func revenueKeys(m Mutation) []string {
	return []string{
		RevenueKey(m.StoreID, PeriodLifetime),
		RevenueKey(m.StoreID, PeriodCurrentMonth),
		RevenueKey(m.StoreID, PeriodPreviousMonth),
		RevenueKey(m.StoreID, PeriodGraph),
	}
}

func salesKeys(m Mutation) []string {
	return []string{
		SalesKey(m.StoreID, PeriodLifetime),
		SalesKey(m.StoreID, PeriodToday),
		SalesKey(m.StoreID, PeriodWeek),
		SalesKey(m.StoreID, PeriodMonth),
		SalesKey(m.StoreID, PeriodYear),
	}
}

// Coordinator resolves mutations to cache keys and purges them. Purge
// failures are logged and absorbed: once the persistent-store write has
// committed, nothing here may block the caller, and missed deletes
// self-correct within one TTL period.
type Coordinator struct {
	store  Store
	logger *zap.Logger
}

func NewCoordinator(store Store, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		store:  store,
		logger: logger.Named("invalidation"),
	}
}

// Keys returns the exact keys and glob patterns affected by a mutation.
func (c *Coordinator) Keys(m Mutation) (keys, patterns []string) {
	seen := make(map[string]struct{})
	for _, rule := range rules[m.Kind] {
		for _, k := range rule(m) {
			if _, dup := seen[k]; dup || k == "" {
				continue
			}
			seen[k] = struct{}{}
			if strings.HasSuffix(k, "*") {
				patterns = append(patterns, k)
			} else {
				keys = append(keys, k)
			}
		}
	}
	return keys, patterns
}

// Invalidate purges every key affected by the mutation. Pattern and exact
// deletes fan out concurrently; there is no ordering dependency among
// them, only on the already-committed write that preceded this call.
func (c *Coordinator) Invalidate(ctx context.Context, m Mutation) {
	keys, patterns := c.Keys(m)
	if len(keys) == 0 && len(patterns) == 0 {
		c.logger.Warn("no invalidation rules for mutation", zap.String("kind", string(m.Kind)))
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func(keys []string) {
		defer wg.Done()
		if err := c.store.Delete(ctx, keys...); err != nil {
			c.logger.Warn("cache invalidation failed",
				zap.Strings("keys", keys), zap.Error(err))
		}
	}(keys)

	for _, pattern := range patterns {
		wg.Add(1)
		go func(pattern string) {
			defer wg.Done()
			if err := c.store.DeletePattern(ctx, pattern); err != nil {
				c.logger.Warn("cache pattern invalidation failed",
					zap.String("pattern", pattern), zap.Error(err))
			}
		}(pattern)
	}

	wg.Wait()

	c.logger.Debug("invalidated",
		zap.String("kind", string(m.Kind)),
		zap.String("op", string(m.Op)),
		zap.String("id", m.ID),
		zap.Int("keys", len(keys)),
		zap.Int("patterns", len(patterns)))
}

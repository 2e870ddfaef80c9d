package cache

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func containsKey(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

func TestCoordinatorKeysForOrderPayment(t *testing.T) {
	coord := NewCoordinator(NewNoopStore(), zap.NewNop())

	keys, patterns := coord.Keys(Mutation{
		Kind:    KindOrder,
		Op:      OpPayment,
		ID:      "o1",
		StoreID: "s1",
		UserID:  "u1",
	})

	for _, want := range []string{
		ItemKey(KindOrder, "o1"),
		ListKey(KindOrder, "s1"),
		UserOrdersKey("u1", OrderStatusPending),
		UserOrdersKey("u1", OrderStatusDelivered),
		RevenueKey("s1", PeriodLifetime),
		RevenueKey("s1", PeriodCurrentMonth),
		RevenueKey("s1", PeriodPreviousMonth),
		RevenueKey("s1", PeriodGraph),
		SalesKey("s1", PeriodLifetime),
		SalesKey("s1", PeriodToday),
		SalesKey("s1", PeriodWeek),
		SalesKey("s1", PeriodMonth),
		SalesKey("s1", PeriodYear),
	} {
		if !containsKey(keys, want) {
			t.Fatalf("order payment did not invalidate %s (got %v)", want, keys)
		}
	}

	if len(patterns) != 0 {
		t.Fatalf("order mutations need no patterns, got %v", patterns)
	}
}

func TestCoordinatorKeysForCategory(t *testing.T) {
	coord := NewCoordinator(NewNoopStore(), zap.NewNop())

	keys, patterns := coord.Keys(Mutation{
		Kind:    KindCategory,
		Op:      OpUpdate,
		ID:      "c1",
		StoreID: "s1",
	})

	if !containsKey(keys, ItemKey(KindCategory, "c1")) {
		t.Fatalf("category update must purge its item slot, got %v", keys)
	}
	// The list pattern covers the admin list and every gender list.
	if !containsKey(patterns, ListKeyPattern(KindCategory, "s1")) {
		t.Fatalf("category update must purge list variants, got %v", patterns)
	}
}

func TestCoordinatorKeysForProductCoverFilteredLists(t *testing.T) {
	coord := NewCoordinator(NewNoopStore(), zap.NewNop())

	keys, patterns := coord.Keys(Mutation{
		Kind:    KindProduct,
		Op:      OpCreate,
		ID:      "p1",
		StoreID: "s1",
	})

	if !containsKey(keys, ItemKey(KindProduct, "p1")) {
		t.Fatalf("product create must purge its item slot, got %v", keys)
	}
	if !containsKey(patterns, ListKeyPattern(KindProduct, "s1")) {
		t.Fatalf("product create must purge filtered list slots, got %v", patterns)
	}
}

func TestCoordinatorKeysForReview(t *testing.T) {
	coord := NewCoordinator(NewNoopStore(), zap.NewNop())

	keys, patterns := coord.Keys(Mutation{
		Kind:      KindReview,
		Op:        OpCreate,
		ID:        "r1",
		UserID:    "u1",
		ProductID: "p1",
	})

	if !containsKey(keys, ItemKey(KindReview, "r1")) {
		t.Fatalf("review create must purge its item slot, got %v", keys)
	}
	if !containsKey(keys, UserReviewsKey("u1")) {
		t.Fatalf("review create must purge the user's review list, got %v", keys)
	}
	if !containsKey(patterns, ReviewPageKeyPattern("p1")) {
		t.Fatalf("review create must purge the product's review pages, got %v", patterns)
	}
}

func TestCoordinatorInvalidatePurgesMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	coord := NewCoordinator(store, zap.NewNop())
	ctx := context.Background()

	itemKey := ItemKey(KindProduct, "p1")
	listKey := ListKey(KindProduct, "s1")
	filtered := listKey + ":cat=c1:min=-:max=-:feat=-:page=1:per=20"
	unrelated := ListKey(KindProduct, "s2")

	for _, key := range []string{listKey, filtered, unrelated} {
		if err := store.Set(ctx, key, "[]", ListTTL); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}
	if err := store.SetHash(ctx, itemKey, string(KindProduct), "{}", ItemTTL); err != nil {
		t.Fatalf("seed item: %v", err)
	}

	coord.Invalidate(ctx, Mutation{Kind: KindProduct, Op: OpUpdate, ID: "p1", StoreID: "s1"})

	if _, err := store.GetHash(ctx, itemKey, string(KindProduct)); err != ErrMiss {
		t.Fatal("item slot survived invalidation")
	}
	if _, err := store.Get(ctx, listKey); err != ErrMiss {
		t.Fatal("list slot survived invalidation")
	}
	if _, err := store.Get(ctx, filtered); err != ErrMiss {
		t.Fatal("filtered list slot survived invalidation")
	}
	if _, err := store.Get(ctx, unrelated); err != nil {
		t.Fatal("another store's list slot was wrongly purged")
	}
}

func TestCoordinatorUnknownKindIsNoop(t *testing.T) {
	store := NewMemoryStore()
	coord := NewCoordinator(store, zap.NewNop())
	ctx := context.Background()

	if err := store.Set(ctx, "survivor", "1", ListTTL); err != nil {
		t.Fatal(err)
	}

	coord.Invalidate(ctx, Mutation{Kind: Kind("bogus"), Op: OpCreate, ID: "x"})

	if _, err := store.Get(ctx, "survivor"); err != nil {
		t.Fatal("unrelated key was purged for an unknown mutation kind")
	}
}

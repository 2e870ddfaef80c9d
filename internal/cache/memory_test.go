package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreScalarRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); err != ErrMiss {
		t.Fatalf("expected ErrMiss, got %v", err)
	}

	if err := store.Set(ctx, "k", "v", ListTTL); err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, "k")
	if err != nil || got != "v" {
		t.Fatalf("Get = %q, %v", got, err)
	}
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	store.SetClock(func() time.Time { return now })

	if err := store.Set(ctx, "list", "[]", ListTTL); err != nil {
		t.Fatal(err)
	}
	if err := store.SetHash(ctx, "item", "product", "{}", ItemTTL); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, "token", "abc", ResetTokenTTL); err != nil {
		t.Fatal(err)
	}

	// Three minutes in: only the reset token is gone.
	now = now.Add(3 * time.Minute)
	if _, err := store.Get(ctx, "token"); err != ErrMiss {
		t.Fatal("reset token should expire after two minutes")
	}
	if _, err := store.Get(ctx, "list"); err != nil {
		t.Fatal("list entry expired too early")
	}

	// Three hours in: lists are gone, items remain.
	now = now.Add(3 * time.Hour)
	if _, err := store.Get(ctx, "list"); err != ErrMiss {
		t.Fatal("list entry should expire after two hours")
	}
	if _, err := store.GetHash(ctx, "item", "product"); err != nil {
		t.Fatal("item entry expired too early")
	}

	// Past a day: everything is gone.
	now = now.Add(25 * time.Hour)
	if _, err := store.GetHash(ctx, "item", "product"); err != ErrMiss {
		t.Fatal("item entry should expire after a day")
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, have %d entries", store.Len())
	}
}

func TestMemoryStoreHashFieldsAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.SetHash(ctx, "k", "a", "1", ItemTTL); err != nil {
		t.Fatal(err)
	}
	if err := store.SetHash(ctx, "k", "b", "2", ItemTTL); err != nil {
		t.Fatal(err)
	}

	if got, _ := store.GetHash(ctx, "k", "a"); got != "1" {
		t.Fatalf("field a = %q", got)
	}
	if _, err := store.GetHash(ctx, "k", "c"); err != ErrMiss {
		t.Fatal("expected miss for absent field")
	}
	// Scalar reads never see hash entries.
	if _, err := store.Get(ctx, "k"); err != ErrMiss {
		t.Fatal("scalar Get must miss on a hash entry")
	}
}

func TestMemoryStoreDeletePattern(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	keys := []string{
		"review:list:p1:page=1:per=3",
		"review:list:p1:page=2:per=3",
		"review:list:p2:page=1:per=3",
	}
	for _, key := range keys {
		if err := store.Set(ctx, key, "[]", ListTTL); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.DeletePattern(ctx, ReviewPageKeyPattern("p1")); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Get(ctx, keys[0]); err != ErrMiss {
		t.Fatal("page 1 survived pattern delete")
	}
	if _, err := store.Get(ctx, keys[1]); err != ErrMiss {
		t.Fatal("page 2 survived pattern delete")
	}
	if _, err := store.Get(ctx, keys[2]); err != nil {
		t.Fatal("another product's page was wrongly deleted")
	}
}

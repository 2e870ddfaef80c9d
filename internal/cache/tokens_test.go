package cache

import (
	"context"
	"testing"
	"time"
)

func TestPasswordResetTokenLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	store.SetClock(func() time.Time { return now })

	if _, err := GetPasswordResetToken(ctx, store, "a@b.test"); err != ErrMiss {
		t.Fatalf("expected ErrMiss before issue, got %v", err)
	}

	if err := SetPasswordResetToken(ctx, store, "a@b.test", "tok-1"); err != nil {
		t.Fatal(err)
	}
	got, err := GetPasswordResetToken(ctx, store, "a@b.test")
	if err != nil || got != "tok-1" {
		t.Fatalf("Get = %q, %v", got, err)
	}

	if err := DeletePasswordResetToken(ctx, store, "a@b.test"); err != nil {
		t.Fatal(err)
	}
	if _, err := GetPasswordResetToken(ctx, store, "a@b.test"); err != ErrMiss {
		t.Fatal("token survived consumption")
	}

	// Reissue and let it expire instead.
	if err := SetPasswordResetToken(ctx, store, "a@b.test", "tok-2"); err != nil {
		t.Fatal(err)
	}
	now = now.Add(ResetTokenTTL + time.Second)
	if _, err := GetPasswordResetToken(ctx, store, "a@b.test"); err != ErrMiss {
		t.Fatal("token survived past its TTL")
	}
}

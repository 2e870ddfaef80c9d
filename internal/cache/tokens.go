package cache

import (
	"context"
	"fmt"
)

// Password-reset tokens live in the same backend but are not part of the
// catalog cache policy: short TTL, no invalidation rules, and a read is
// authoritative rather than advisory, so errors here do surface.

func resetTokenKey(email string) string {
	return join("reset-token", email)
}

// SetPasswordResetToken stores a one-time reset token for ResetTokenTTL.
func SetPasswordResetToken(ctx context.Context, store Store, email, token string) error {
	if err := store.Set(ctx, resetTokenKey(email), token, ResetTokenTTL); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	return nil
}

// GetPasswordResetToken returns the token for email, or ErrMiss if it was
// never set or has expired.
func GetPasswordResetToken(ctx context.Context, store Store, email string) (string, error) {
	return store.Get(ctx, resetTokenKey(email))
}

// DeletePasswordResetToken consumes the token after a successful reset.
func DeletePasswordResetToken(ctx context.Context, store Store, email string) error {
	return store.Delete(ctx, resetTokenKey(email))
}

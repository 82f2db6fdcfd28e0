package session

import (
	"context"
	"fmt"
	"time"

	"github.com/hcgdev/journal-api/sys"
)

const sessionKey = "sessions.%s"

// Put stores token -> user, expiring after ttl.
func Put(ctx context.Context, token, user string, ttl time.Duration) error {
	if err := sys.R.Blob.SetTTL(ctx, fmt.Sprintf(sessionKey, token), user, ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get resolves token to its username; ok is false for unknown or expired
// tokens.
func Get(ctx context.Context, token string) (string, bool, error) {
	user, ok, err := sys.R.Blob.Get(ctx, fmt.Sprintf(sessionKey, token))
	if err != nil {
		return "", false, fmt.Errorf("failed to read session: %w", err)
	}
	return user, ok, nil
}

// Del removes the session for token. Unknown tokens are a no-op.
func Del(ctx context.Context, token string) error {
	if err := sys.R.Blob.Del(ctx, fmt.Sprintf(sessionKey, token)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

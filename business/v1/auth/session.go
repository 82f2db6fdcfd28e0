package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/hcgdev/journal-api/persistence/v1/session"
	"github.com/hcgdev/journal-api/sys"
)

func establish(ctx context.Context, username string) (Session, error) {
	token := uuid.NewString()
	if err := session.Put(ctx, token, username, sys.Configs.Session.TTL); err != nil {
		return Session{}, err
	}
	return Session{Token: token, Username: username}, nil
}

// Current resolves the username behind token; ok is false for unknown or
// expired tokens.
func Current(ctx context.Context, token string) (string, bool, error) {
	return session.Get(ctx, token)
}

// Logout drops the session for token. Unknown tokens are a no-op.
func Logout(ctx context.Context, token string) error {
	return session.Del(ctx, token)
}

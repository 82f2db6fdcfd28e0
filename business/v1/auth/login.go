package auth

import (
	"context"

	"github.com/hcgdev/journal-api/persistence/v1/credential"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the stored credential for username and establishes a session.
func Login(ctx context.Context, username, password string) (Session, error) {
	users, err := credential.Load(ctx)
	if err != nil {
		return Session{}, err
	}

	hash, ok := users[username]
	if !ok {
		return Session{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	return establish(ctx, username)
}

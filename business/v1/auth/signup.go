package auth

import (
	"context"
	"fmt"

	"github.com/hcgdev/journal-api/persistence/v1/credential"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers username with a bcrypt hashed password and immediately
// establishes a session.
func Signup(ctx context.Context, username, password string) (Session, error) {
	if len(username) < 3 {
		return Session{}, ErrUsernameTooShort
	}
	if len(password) < 4 {
		return Session{}, ErrPasswordTooShort
	}

	users, err := credential.Load(ctx)
	if err != nil {
		return Session{}, err
	}
	if _, taken := users[username]; taken {
		return Session{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	users[username] = string(hash)
	if err := credential.Save(ctx, users); err != nil {
		return Session{}, err
	}

	return establish(ctx, username)
}

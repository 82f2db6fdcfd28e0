package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hcgdev/journal-api/persistence/v1/blob"
	"github.com/hcgdev/journal-api/sys"
	"go.uber.org/zap"
)

func setup() {
	sys.R.Log = zap.NewNop().Sugar()
	sys.R.Blob = blob.NewMemory()
	sys.Configs.Session.TTL = time.Hour
}

func TestSignupValidation(t *testing.T) {
	setup()
	ctx := context.Background()

	if _, err := Signup(ctx, "ab", "1234"); !errors.Is(err, ErrUsernameTooShort) {
		t.Fatalf("expected ErrUsernameTooShort, got %v", err)
	}
	if _, err := Signup(ctx, "abcd", "123"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestSignupEstablishesSession(t *testing.T) {
	setup()
	ctx := context.Background()

	established, err := Signup(ctx, "abcd", "1234")
	if err != nil {
		t.Fatal(err)
	}
	if established.Token == "" || established.Username != "abcd" {
		t.Fatalf("unexpected session: %+v", established)
	}

	user, ok, err := Current(ctx, established.Token)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || user != "abcd" {
		t.Fatalf("signup should immediately establish a session, got user=%q ok=%v", user, ok)
	}
}

func TestSignupTakenUsername(t *testing.T) {
	setup()
	ctx := context.Background()

	if _, err := Signup(ctx, "abcd", "1234"); err != nil {
		t.Fatal(err)
	}
	if _, err := Signup(ctx, "abcd", "5678"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginMessageParity(t *testing.T) {
	setup()
	ctx := context.Background()

	if _, err := Signup(ctx, "abcd", "1234"); err != nil {
		t.Fatal(err)
	}

	// a missing user and a wrong password must be indistinguishable
	_, missingErr := Login(ctx, "nobody", "1234")
	_, wrongErr := Login(ctx, "abcd", "wrong")

	if !errors.Is(missingErr, ErrInvalidCredentials) {
		t.Fatalf("missing user: expected ErrInvalidCredentials, got %v", missingErr)
	}
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if missingErr.Error() != wrongErr.Error() {
		t.Fatalf("messages differ: %q vs %q", missingErr.Error(), wrongErr.Error())
	}
}

func TestLoginSuccess(t *testing.T) {
	setup()
	ctx := context.Background()

	if _, err := Signup(ctx, "abcd", "1234"); err != nil {
		t.Fatal(err)
	}

	established, err := Login(ctx, "abcd", "1234")
	if err != nil {
		t.Fatal(err)
	}
	if user, ok, _ := Current(ctx, established.Token); !ok || user != "abcd" {
		t.Fatalf("login session not usable: user=%q ok=%v", user, ok)
	}
}

func TestLogout(t *testing.T) {
	setup()
	ctx := context.Background()

	established, err := Signup(ctx, "abcd", "1234")
	if err != nil {
		t.Fatal(err)
	}

	if err := Logout(ctx, established.Token); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := Current(ctx, established.Token); ok {
		t.Fatal("session should be gone after logout")
	}
	// logging out twice is a no-op
	if err := Logout(ctx, established.Token); err != nil {
		t.Fatal(err)
	}
}

func TestMalformedCredentialBlob(t *testing.T) {
	setup()
	ctx := context.Background()

	if err := sys.R.Blob.Set(ctx, "users", "][ nope"); err != nil {
		t.Fatal(err)
	}

	// a corrupt map must behave like an empty one: signup works, login fails
	if _, err := Login(ctx, "abcd", "1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on corrupt blob, got %v", err)
	}
	if _, err := Signup(ctx, "abcd", "1234"); err != nil {
		t.Fatalf("signup should recover from corrupt blob, got %v", err)
	}
}

package credential

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hcgdev/journal-api/sys"
)

const usersKey = "users"

// Load returns the username to password-hash map. A missing blob is an empty
// map; a malformed blob is logged and treated as empty.
func Load(ctx context.Context) (map[string]string, error) {
	logger := sys.R.Log
	store := sys.R.Blob

	raw, ok, err := store.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	if !ok {
		return map[string]string{}, nil
	}

	users := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		logger.Errorf("failed to parse stored credentials: %s", err)
		return map[string]string{}, nil
	}
	return users, nil
}

// Save overwrites the credential map blob.
func Save(ctx context.Context, users map[string]string) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to serialize credentials: %w", err)
	}
	if err := sys.R.Blob.Set(ctx, usersKey, string(data)); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

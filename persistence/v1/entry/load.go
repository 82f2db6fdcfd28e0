package entry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hcgdev/journal-api/sys"
)

// Load reads the persisted collection for user. A missing blob is an empty
// collection; a malformed blob is logged and treated as empty rather than
// surfaced to the caller.
func Load(ctx context.Context, user string) ([]Entry, error) {
	logger := sys.R.Log
	store := sys.R.Blob

	raw, ok, err := store.Get(ctx, Key(user))
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for %s: %w", user, err)
	}
	if !ok {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logger.Errorf("failed to parse stored entries for %s: %s", user, err)
		return []Entry{}, nil
	}
	return entries, nil
}

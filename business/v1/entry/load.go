package entry

import (
	"context"

	"github.com/hcgdev/journal-api/persistence/v1/entry"
)

// Load fetches the persisted collection for user.
func Load(ctx context.Context, user string) ([]Entry, error) {
	stored, err := entry.Load(ctx, user)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(stored))
	for _, e := range stored {
		entries = append(entries, Entry(e))
	}
	return entries, nil
}

// Save persists the whole collection for user.
func Save(ctx context.Context, user string, entries []Entry) error {
	stored := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		stored = append(stored, entry.Entry(e))
	}
	return entry.Save(ctx, user, stored)
}

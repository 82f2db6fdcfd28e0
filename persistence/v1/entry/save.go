package entry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hcgdev/journal-api/sys"
)

// Save serializes the whole collection and overwrites the persisted blob for
// user. Last write wins, there are no partial updates.
func Save(ctx context.Context, user string, entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize entries for %s: %w", user, err)
	}
	if err := sys.R.Blob.Set(ctx, Key(user), string(data)); err != nil {
		return fmt.Errorf("failed to save entries for %s: %w", user, err)
	}
	return nil
}

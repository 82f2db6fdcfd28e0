package entry

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Create validates data, stamps it with a fresh id and creation time, and
// prepends it so the collection stays in reverse insertion order. It returns
// the updated collection and the created entry.
func Create(entries []Entry, data NewEntry) ([]Entry, Entry, error) {
	if strings.TrimSpace(data.Title) == "" {
		return nil, Entry{}, ErrEmptyTitle
	}
	if strings.TrimSpace(data.Content) == "" {
		return nil, Entry{}, ErrEmptyContent
	}
	if _, err := time.Parse(dateLayout, data.Date); err != nil {
		return nil, Entry{}, ErrBadDate
	}

	created := Entry{
		Id:        uuid.NewString(),
		Title:     data.Title,
		Content:   data.Content,
		Date:      data.Date,
		CreatedAt: time.Now().UnixMilli(),
	}
	return append([]Entry{created}, entries...), created, nil
}

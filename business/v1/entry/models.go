package entry

import "errors"

// Entry is one journal post, tied to exactly one calendar date. Entries are
// immutable after creation except for deletion.
type Entry struct {
	Id        string `json:"id" example:"5f7c1a0e-8a44-4a8e-9f0a-1c2d3e4f5a6b"`
	Title     string `json:"title" example:"my first entry"`
	Content   string `json:"content" example:"today I started a journal"`
	Date      string `json:"date" example:"2024-01-01"`
	CreatedAt int64  `json:"createdAt" example:"1704103200000"`
}

// NewEntry is the user supplied part of an entry.
type NewEntry struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// DateStats counts entries per calendar date. Dates with no entries are
// absent, never present with a zero count.
type DateStats map[string]int

// Stats is the aggregate view served to the calendar.
type Stats struct {
	Dates        DateStats `json:"dates"`
	TotalEntries int       `json:"totalEntries" example:"3"`
	DaysActive   int       `json:"daysActive" example:"2"`
}

// Event is the payload consumed by the messaging import.
type Event struct {
	Type string `json:"type"`
	User string `json:"user"`
	Data any    `json:"data"`
}

var (
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrEmptyContent = errors.New("content must not be empty")
	ErrBadDate      = errors.New("date must be a valid YYYY-MM-DD date")
)

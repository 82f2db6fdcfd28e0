package entry

import "sort"

// Filter returns the entries on date, or every entry when date is empty.
func Filter(entries []Entry, date string) []Entry {
	if date == "" {
		return entries
	}
	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return matched
}

// SortByCreatedDesc orders entries most recently created first. The sort is
// stable so entries created in the same millisecond keep their relative
// order in the collection.
func SortByCreatedDesc(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	return sorted
}

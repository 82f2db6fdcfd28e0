package entry

// Delete removes the entry with the given id. Deleting an id that is not
// present leaves the collection unchanged.
func Delete(entries []Entry, id string) []Entry {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Id != id {
			kept = append(kept, e)
		}
	}
	return kept
}

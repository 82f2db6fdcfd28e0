package entry

// Selection is the nullable date filter over the visible entry list.
type Selection struct {
	date string
	set  bool
}

// Toggle selects date, or clears the selection when date is already the
// current selection.
func (s *Selection) Toggle(date string) {
	if s.set && s.date == date {
		s.Clear()
		return
	}
	s.date, s.set = date, true
}

// Clear resets the selection, as happens when the active session changes.
func (s *Selection) Clear() {
	s.date, s.set = "", false
}

// Date returns the selected date and whether one is selected.
func (s *Selection) Date() (string, bool) {
	return s.date, s.set
}

// Apply filters entries by the current selection.
func (s *Selection) Apply(entries []Entry) []Entry {
	if !s.set {
		return entries
	}
	return Filter(entries, s.date)
}

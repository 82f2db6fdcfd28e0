package entry

// Aggregate derives per-date entry counts from the collection. Pure function:
// the sum of the counts equals the number of entries, and no date maps to
// zero.
func Aggregate(entries []Entry) DateStats {
	stats := DateStats{}
	for _, e := range entries {
		stats[e.Date]++
	}
	return stats
}

// Summarize builds the calendar view: per-date counts, total entry count and
// the number of days with at least one entry.
func Summarize(entries []Entry) Stats {
	dates := Aggregate(entries)
	total := 0
	for _, count := range dates {
		total += count
	}
	return Stats{
		Dates:        dates,
		TotalEntries: total,
		DaysActive:   len(dates),
	}
}

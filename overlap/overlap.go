// Package overlap reports trips whose time ranges intersect on the same
// calendar day. It is report-only: entries are never adjusted.
package overlap

import (
	"sort"

	"travelog/triplog"
)

// Conflict is one pair of same-day trips whose time ranges intersect.
type Conflict struct {
	Day   string
	First triplog.Entry
	Other triplog.Entry
}

type Report struct {
	DaysProcessed int
	Conflicts     []Conflict
}

// Find groups entries by start date and detects pairwise overlaps within
// each day, in chronological order.
func Find(entries []triplog.Entry) *Report {
	report := &Report{Conflicts: []Conflict{}}
	if len(entries) == 0 {
		return report
	}

	byDay := groupByDay(entries)
	days := sortedKeys(byDay)
	report.DaysProcessed = len(days)

	for _, day := range days {
		report.Conflicts = append(report.Conflicts, dayConflicts(day, byDay[day])...)
	}

	return report
}

func groupByDay(entries []triplog.Entry) map[string][]triplog.Entry {
	byDay := make(map[string][]triplog.Entry)
	for _, entry := range entries {
		day := entry.Start.Format("2006-01-02")
		byDay[day] = append(byDay[day], entry)
	}
	return byDay
}

func sortedKeys(values map[string][]triplog.Entry) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func dayConflicts(day string, entries []triplog.Entry) []Conflict {
	if len(entries) < 2 {
		return nil
	}

	sorted := append([]triplog.Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].End.Before(sorted[j].End)
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	conflicts := make([]Conflict, 0, 4)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if !sorted[j].Start.Before(sorted[i].End) {
				break
			}
			conflicts = append(conflicts, Conflict{Day: day, First: sorted[i], Other: sorted[j]})
		}
	}

	return conflicts
}

package output

import (
	"fmt"
	"sort"
	"time"

	"travelog/internal/durtext"
	"travelog/triplog"
)

// DailySummary aggregates one calendar day of travel: first departure, last
// arrival, trip count, and total time spent travelling.
type DailySummary struct {
	Date           string
	FirstDeparture time.Time
	LastArrival    time.Time
	TripCount      int
	TravelSeconds  int64
	TravelTime     string
}

// BuildDailySummaries groups entries by start date and summarizes each day
// in ascending date order.
func BuildDailySummaries(entries []triplog.Entry) []DailySummary {
	if len(entries) == 0 {
		return []DailySummary{}
	}

	byDay := make(map[string][]triplog.Entry)
	for _, entry := range entries {
		day := entry.Start.Format("2006-01-02")
		byDay[day] = append(byDay[day], entry)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	summaries := make([]DailySummary, 0, len(days))
	for _, day := range days {
		summaries = append(summaries, summarizeDay(day, byDay[day]))
	}

	return summaries
}

func summarizeDay(day string, entries []triplog.Entry) DailySummary {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Start.Equal(entries[j].Start) {
			return entries[i].End.Before(entries[j].End)
		}
		return entries[i].Start.Before(entries[j].Start)
	})

	first := entries[0].Start
	last := entries[0].End
	total := int64(0)

	for _, entry := range entries {
		total += durtext.Seconds(entry.Start, entry.End)
		if entry.End.After(last) {
			last = entry.End
		}
	}

	return DailySummary{
		Date:           day,
		FirstDeparture: first,
		LastArrival:    last,
		TripCount:      len(entries),
		TravelSeconds:  total,
		TravelTime:     durtext.RenderSeconds(total),
	}
}

func WriteDailySummaries(path, format string, summaries []DailySummary) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeDailySummariesCSV(path, summaries)
	case "excel", "xlsx":
		return writeDailySummariesExcel(path, summaries)
	default:
		return fmt.Errorf("unsupported output format for daily summaries: %s", format)
	}
}

func dailyHeaders() []string {
	return []string{"Date", "FirstDeparture", "LastArrival", "TripCount", "TravelTime"}
}

package overlap

import (
	"testing"
	"time"

	"travelog/triplog"
)

func entry(t *testing.T, id int64, start, end string) triplog.Entry {
	t.Helper()

	layout := "2006-01-02 15:04"
	startTime, err := time.ParseInLocation(layout, start, time.Local)
	if err != nil {
		t.Fatalf("parse start %q: %v", start, err)
	}
	endTime, err := time.ParseInLocation(layout, end, time.Local)
	if err != nil {
		t.Fatalf("parse end %q: %v", end, err)
	}
	return triplog.Entry{ID: id, Origin: "A", Destination: "B", Mode: "Car", Start: startTime, End: endTime}
}

func TestFind_NoConflicts(t *testing.T) {
	t.Parallel()

	entries := []triplog.Entry{
		entry(t, 1, "2026-01-05 08:00", "2026-01-05 09:00"),
		entry(t, 2, "2026-01-05 09:00", "2026-01-05 10:00"),
		entry(t, 3, "2026-01-06 08:00", "2026-01-06 09:00"),
	}

	report := Find(entries)
	if report.DaysProcessed != 2 {
		t.Fatalf("expected 2 processed days, got %d", report.DaysProcessed)
	}
	if len(report.Conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %d", len(report.Conflicts))
	}
}

func TestFind_DetectsOverlapWithinDay(t *testing.T) {
	t.Parallel()

	entries := []triplog.Entry{
		entry(t, 1, "2026-01-05 08:00", "2026-01-05 09:30"),
		entry(t, 2, "2026-01-05 09:00", "2026-01-05 10:00"),
	}

	report := Find(entries)
	if len(report.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(report.Conflicts))
	}
	conflict := report.Conflicts[0]
	if conflict.Day != "2026-01-05" {
		t.Fatalf("unexpected conflict day %q", conflict.Day)
	}
	if conflict.First.ID != 1 || conflict.Other.ID != 2 {
		t.Fatalf("unexpected conflict pair %d/%d", conflict.First.ID, conflict.Other.ID)
	}
}

func TestFind_AdjacentTripsDoNotConflict(t *testing.T) {
	t.Parallel()

	entries := []triplog.Entry{
		entry(t, 1, "2026-01-05 08:00", "2026-01-05 09:00"),
		entry(t, 2, "2026-01-05 09:00", "2026-01-05 09:30"),
	}

	if report := Find(entries); len(report.Conflicts) != 0 {
		t.Fatalf("expected back-to-back trips to be fine, got %d conflicts", len(report.Conflicts))
	}
}

func TestFind_MultipleOverlapsSameDay(t *testing.T) {
	t.Parallel()

	// One long trip swallows two shorter ones.
	entries := []triplog.Entry{
		entry(t, 1, "2026-01-05 08:00", "2026-01-05 12:00"),
		entry(t, 2, "2026-01-05 09:00", "2026-01-05 09:30"),
		entry(t, 3, "2026-01-05 10:00", "2026-01-05 10:30"),
	}

	report := Find(entries)
	if len(report.Conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %d", len(report.Conflicts))
	}
}

func TestFind_Empty(t *testing.T) {
	t.Parallel()

	report := Find(nil)
	if report.DaysProcessed != 0 || len(report.Conflicts) != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
}

package logbook

import (
	"testing"
	"time"

	"travelog/triplog"
)

func sortFixture(t *testing.T) *Collection {
	t.Helper()

	collection := NewCollection("Commutes", newFakeStore())
	trips := []struct {
		origin   string
		start    time.Time
		duration time.Duration
	}{
		{"Home", time.Date(2024, time.January, 5, 13, 30, 0, 0, time.Local), 95 * time.Minute},
		{"Airport", time.Date(2024, time.January, 5, 9, 0, 0, 0, time.Local), 45 * time.Minute},
		{"Office", time.Date(2024, time.January, 4, 18, 15, 0, 0, time.Local), 26*time.Hour + 35*time.Minute},
	}
	for _, trip := range trips {
		_, err := collection.Create(triplog.Input{
			Origin:      trip.origin,
			Destination: "Somewhere",
			Mode:        "Car",
			Start:       trip.start,
			End:         trip.start.Add(trip.duration),
		})
		if err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}
	return collection
}

func origins(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Origin)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortRows(t *testing.T) {
	t.Parallel()

	collection := sortFixture(t)

	tests := []struct {
		name      string
		column    Column
		ascending bool
		want      []string
	}{
		{name: "start ascending", column: ColumnStart, ascending: true, want: []string{"Office", "Airport", "Home"}},
		{name: "start descending", column: ColumnStart, ascending: false, want: []string{"Home", "Airport", "Office"}},
		// The 9 AM trip must not sort above the 1:30 PM trip just because
		// "9:00 AM" and "1:30 PM" compare that way as text.
		{name: "duration ascending", column: ColumnDuration, ascending: true, want: []string{"Airport", "Home", "Office"}},
		{name: "origin ascending", column: ColumnOrigin, ascending: true, want: []string{"Airport", "Home", "Office"}},
		{name: "id ascending", column: ColumnID, ascending: true, want: []string{"Home", "Airport", "Office"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sorted := SortRows(collection.Rows(), tt.column, tt.ascending)
			if got := origins(sorted); !equalStrings(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSortRows_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	collection := sortFixture(t)
	rows := collection.Rows()
	before := origins(rows)

	SortRows(rows, ColumnStart, true)

	if got := origins(rows); !equalStrings(got, before) {
		t.Fatalf("expected input order %v to survive, got %v", before, got)
	}
}

func TestColumnByName(t *testing.T) {
	t.Parallel()

	column, err := ColumnByName("duration")
	if err != nil {
		t.Fatalf("column by name: %v", err)
	}
	if column != ColumnDuration {
		t.Fatalf("expected duration column, got %q", column)
	}

	if _, err := ColumnByName("bogus"); err == nil {
		t.Fatalf("expected error for unknown column")
	}
}

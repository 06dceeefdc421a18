package logbook

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"travelog/triplog"
)

// fakeStore is an in-memory Store with switchable failure injection.
type fakeStore struct {
	entries []triplog.Entry
	nextID  int64

	failInsert  bool
	failReplace bool
	failRemove  bool
}

var errStoreDown = errors.New("store down")

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (s *fakeStore) ListAll() ([]triplog.Entry, error) {
	return append([]triplog.Entry(nil), s.entries...), nil
}

func (s *fakeStore) Get(id int64) (triplog.Entry, error) {
	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return triplog.Entry{}, triplog.ErrNotFound
}

func (s *fakeStore) Insert(entry triplog.Entry) (int64, error) {
	if s.failInsert {
		return 0, errStoreDown
	}
	entry.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, entry)
	return entry.ID, nil
}

func (s *fakeStore) Replace(id int64, entry triplog.Entry) error {
	if s.failReplace {
		return errStoreDown
	}
	for i := range s.entries {
		if s.entries[i].ID == id {
			entry.ID = id
			s.entries[i] = entry
			return nil
		}
	}
	return triplog.ErrNotFound
}

func (s *fakeStore) Remove(id int64) error {
	if s.failRemove {
		return errStoreDown
	}
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return triplog.ErrNotFound
}

func (s *fakeStore) RemoveAll() error {
	s.entries = nil
	return nil
}

func tripInput(origin string, startHour, durationMinutes int) triplog.Input {
	start := time.Date(2026, time.January, 5, startHour, 0, 0, 0, time.Local)
	return triplog.Input{
		Origin:      origin,
		Destination: "Office",
		Mode:        "Car",
		Start:       start,
		End:         start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

func TestCollection_CreateAssignsID(t *testing.T) {
	t.Parallel()

	collection := NewCollection("Commutes", newFakeStore())

	first, err := collection.Create(tripInput("Home", 8, 45))
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	second, err := collection.Create(tripInput("Office", 17, 50))
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, got %d twice", first.ID)
	}
	if collection.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", collection.Len())
	}
}

func TestCollection_CreateInvalidLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	collection := NewCollection("Commutes", store)

	in := tripInput("Home", 8, 45)
	in.Destination = ""
	if _, err := collection.Create(in); err == nil {
		t.Fatalf("expected validation error")
	}

	if collection.Len() != 0 {
		t.Fatalf("expected no entries after failed create, got %d", collection.Len())
	}
	if len(store.entries) != 0 {
		t.Fatalf("expected nothing persisted, got %d rows", len(store.entries))
	}
}

func TestCollection_CreateStoreFailureLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.failInsert = true
	collection := NewCollection("Commutes", store)

	if _, err := collection.Create(tripInput("Home", 8, 45)); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
	if collection.Len() != 0 {
		t.Fatalf("expected no entries after store failure, got %d", collection.Len())
	}
}

func TestCollection_UpdatePreservesPositionAndID(t *testing.T) {
	t.Parallel()

	collection := NewCollection("Commutes", newFakeStore())

	first, err := collection.Create(tripInput("Home", 8, 45))
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := collection.Create(tripInput("Office", 17, 50)); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	in := tripInput("Gym", 9, 30)
	updated, err := collection.Update(first.ID, in)
	if err != nil {
		t.Fatalf("update entry: %v", err)
	}
	if updated.ID != first.ID {
		t.Fatalf("expected id %d to be preserved, got %d", first.ID, updated.ID)
	}

	entries := collection.Entries()
	if entries[0].Origin != "Gym" {
		t.Fatalf("expected updated entry to keep position 0, got %+v", entries[0])
	}
}

func TestCollection_UpdateFailuresLeaveStateUnchanged(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	collection := NewCollection("Commutes", store)

	entry, err := collection.Create(tripInput("Home", 8, 45))
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}

	t.Run("unknown id", func(t *testing.T) {
		if _, err := collection.Update(999, tripInput("Gym", 9, 30)); !errors.Is(err, triplog.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		in := tripInput("Gym", 9, 30)
		in.Origin = "  "
		if _, err := collection.Update(entry.ID, in); err == nil {
			t.Fatalf("expected validation error")
		}
		got, _ := collection.Get(entry.ID)
		if got.Origin != "Home" {
			t.Fatalf("expected entry unchanged, got %+v", got)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		store.failReplace = true
		defer func() { store.failReplace = false }()

		if _, err := collection.Update(entry.ID, tripInput("Gym", 9, 30)); !errors.Is(err, errStoreDown) {
			t.Fatalf("expected store error, got %v", err)
		}
		got, _ := collection.Get(entry.ID)
		if got.Origin != "Home" {
			t.Fatalf("expected entry unchanged, got %+v", got)
		}
	})
}

func TestCollection_Delete(t *testing.T) {
	t.Parallel()

	collection := NewCollection("Commutes", newFakeStore())

	entry, err := collection.Create(tripInput("Home", 8, 45))
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}

	if err := collection.Delete(entry.ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if collection.Len() != 0 {
		t.Fatalf("expected empty collection, got %d entries", collection.Len())
	}
	if err := collection.Delete(entry.ID); !errors.Is(err, triplog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for repeated delete, got %v", err)
	}
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	collection := NewCollection("Commutes", store)

	for i := 0; i < 3; i++ {
		if _, err := collection.Create(tripInput(fmt.Sprintf("Stop %d", i), 8+i, 30)); err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}

	if err := collection.Clear(); err != nil {
		t.Fatalf("clear collection: %v", err)
	}
	if collection.Len() != 0 || len(store.entries) != 0 {
		t.Fatalf("expected memory and store to be empty")
	}
}

func TestCollection_Aggregate(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		collection := NewCollection("Commutes", newFakeStore())
		summary := collection.Aggregate()
		if summary.Count != 0 || summary.Total != "" || summary.Average != "" {
			t.Fatalf("unexpected summary %+v", summary)
		}
	})

	t.Run("single entry has no average", func(t *testing.T) {
		collection := NewCollection("Commutes", newFakeStore())
		if _, err := collection.Create(tripInput("Home", 8, 45)); err != nil {
			t.Fatalf("create entry: %v", err)
		}

		summary := collection.Aggregate()
		if summary.Total != "45 mins" {
			t.Fatalf("unexpected total %q", summary.Total)
		}
		if summary.Average != "" {
			t.Fatalf("expected no average for a single entry, got %q", summary.Average)
		}
	})

	t.Run("two entries", func(t *testing.T) {
		collection := NewCollection("Commutes", newFakeStore())
		if _, err := collection.Create(tripInput("Home", 8, 40)); err != nil {
			t.Fatalf("create entry: %v", err)
		}
		if _, err := collection.Create(tripInput("Office", 17, 60)); err != nil {
			t.Fatalf("create entry: %v", err)
		}

		summary := collection.Aggregate()
		if summary.Total != "1 hr & 40 mins" {
			t.Fatalf("unexpected total %q", summary.Total)
		}
		if summary.Average != "50 mins" {
			t.Fatalf("unexpected average %q", summary.Average)
		}
	})
}

func TestCollection_RowsRenderDisplayText(t *testing.T) {
	t.Parallel()

	collection := NewCollection("Commutes", newFakeStore())

	in := triplog.Input{
		Origin:      "Home",
		Destination: "Office",
		Mode:        "Car",
		Start:       time.Date(2024, time.January, 5, 13, 30, 0, 0, time.Local),
		End:         time.Date(2024, time.January, 6, 15, 5, 0, 0, time.Local),
	}
	if _, err := collection.Create(in); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	rows := collection.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Start != "2024, Jan 5 [1:30 PM]" {
		t.Fatalf("unexpected start text %q", row.Start)
	}
	if row.End != "2024, Jan 6 [3:05 PM]" {
		t.Fatalf("unexpected end text %q", row.End)
	}
	if row.Duration != "1 day, 1 hr, & 35 mins" {
		t.Fatalf("unexpected duration text %q", row.Duration)
	}
}

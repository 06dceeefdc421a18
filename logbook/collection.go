package logbook

import (
	"fmt"
	"time"

	"travelog/internal/durtext"
	"travelog/internal/timetext"
	"travelog/triplog"
)

// Collection is an ordered, named set of travel log entries backed by a
// Store. Entries are kept in storage load order; presentation order is
// derived per request via SortRows. In-memory state is only mutated after
// the corresponding persistence call succeeds, so a failed operation leaves
// the collection unchanged.
type Collection struct {
	name    string
	store   Store
	entries []triplog.Entry
}

func NewCollection(name string, store Store) *Collection {
	return &Collection{name: name, store: store}
}

// Load hydrates the collection from its store.
func (c *Collection) Load() error {
	entries, err := c.store.ListAll()
	if err != nil {
		return fmt.Errorf("load collection %q: %w", c.name, err)
	}
	c.entries = entries
	return nil
}

func (c *Collection) Name() string {
	return c.name
}

func (c *Collection) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in storage order.
func (c *Collection) Entries() []triplog.Entry {
	return append([]triplog.Entry(nil), c.entries...)
}

// Get returns the entry with the given id, or triplog.ErrNotFound.
func (c *Collection) Get(id int64) (triplog.Entry, error) {
	index := c.indexOf(id)
	if index < 0 {
		return triplog.Entry{}, fmt.Errorf("entry %d in collection %q: %w", id, c.name, triplog.ErrNotFound)
	}
	return c.entries[index], nil
}

// Create validates the input, persists a new entry, and appends it.
func (c *Collection) Create(in triplog.Input) (triplog.Entry, error) {
	if err := triplog.Validate(in); err != nil {
		return triplog.Entry{}, err
	}

	entry := entryFromInput(in)
	id, err := c.store.Insert(entry)
	if err != nil {
		return triplog.Entry{}, fmt.Errorf("persist new entry: %w", err)
	}

	entry.ID = id
	c.entries = append(c.entries, entry)
	return entry, nil
}

// Update fully replaces the entry with the given id, preserving its
// position. The id itself is immutable.
func (c *Collection) Update(id int64, in triplog.Input) (triplog.Entry, error) {
	index := c.indexOf(id)
	if index < 0 {
		return triplog.Entry{}, fmt.Errorf("entry %d in collection %q: %w", id, c.name, triplog.ErrNotFound)
	}

	if err := triplog.Validate(in); err != nil {
		return triplog.Entry{}, err
	}

	entry := entryFromInput(in)
	entry.ID = id
	if err := c.store.Replace(id, entry); err != nil {
		return triplog.Entry{}, fmt.Errorf("persist entry %d: %w", id, err)
	}

	c.entries[index] = entry
	return entry, nil
}

// Delete removes the entry with the given id from the store and memory.
func (c *Collection) Delete(id int64) error {
	index := c.indexOf(id)
	if index < 0 {
		return fmt.Errorf("entry %d in collection %q: %w", id, c.name, triplog.ErrNotFound)
	}

	if err := c.store.Remove(id); err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}

	c.entries = append(c.entries[:index], c.entries[index+1:]...)
	return nil
}

// Clear removes every entry in the collection, persisted and in-memory.
func (c *Collection) Clear() error {
	if err := c.store.RemoveAll(); err != nil {
		return fmt.Errorf("clear collection %q: %w", c.name, err)
	}
	c.entries = c.entries[:0]
	return nil
}

func (c *Collection) indexOf(id int64) int {
	for i, entry := range c.entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

func entryFromInput(in triplog.Input) triplog.Entry {
	return triplog.Entry{
		Origin:      in.Origin,
		Destination: in.Destination,
		Mode:        in.Mode,
		Start:       in.Start.Truncate(time.Second),
		End:         in.End.Truncate(time.Second),
		Description: in.Description,
	}
}

// Summary holds the aggregate duration texts for a collection. Total is
// empty for an empty collection; Average is shown only for two or more
// entries, since a single entry's average equals its total.
type Summary struct {
	Count          int
	TotalSeconds   int64
	AverageSeconds int64
	Total          string
	Average        string
}

// Aggregate recomputes the duration totals by iterating all current
// entries; nothing is maintained incrementally, so edits in any order
// cannot drift the displayed sums.
func (c *Collection) Aggregate() Summary {
	summary := Summary{Count: len(c.entries)}
	if summary.Count == 0 {
		return summary
	}

	for _, entry := range c.entries {
		summary.TotalSeconds += durtext.Seconds(entry.Start, entry.End)
	}
	summary.AverageSeconds = summary.TotalSeconds / int64(summary.Count)

	summary.Total = durtext.RenderSeconds(summary.TotalSeconds)
	if summary.Count >= 2 {
		summary.Average = durtext.RenderSeconds(summary.AverageSeconds)
	}
	return summary
}

// Row is the presentation form of one entry: display strings plus the
// sortable keys derived from the underlying values.
type Row struct {
	ID          int64
	Origin      string
	Destination string
	Mode        string
	Start       string
	End         string
	Duration    string
	Description string

	startKey    string
	endKey      string
	durationKey string
}

// Rows renders all entries in storage order.
func (c *Collection) Rows() []Row {
	rows := make([]Row, 0, len(c.entries))
	for _, entry := range c.entries {
		rows = append(rows, rowFromEntry(entry))
	}
	return rows
}

func rowFromEntry(entry triplog.Entry) Row {
	return Row{
		ID:          entry.ID,
		Origin:      entry.Origin,
		Destination: entry.Destination,
		Mode:        entry.Mode,
		Start:       timetext.Display(entry.Start),
		End:         timetext.Display(entry.End),
		Duration:    durtext.Render(entry.Start, entry.End),
		Description: entry.Description,
		startKey:    timetext.KeyFromTime(entry.Start),
		endKey:      timetext.KeyFromTime(entry.End),
		durationKey: durtext.Key(entry.Start, entry.End),
	}
}

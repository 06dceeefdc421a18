package logbook

import "travelog/triplog"

// Store is the persistence collaborator for one collection. Implementations
// return triplog.ErrNotFound (possibly wrapped) when an id does not exist.
type Store interface {
	// ListAll returns every persisted entry ordered by id ascending.
	ListAll() ([]triplog.Entry, error)
	Get(id int64) (triplog.Entry, error)
	// Insert persists an entry (id ignored) and returns the generated id.
	Insert(entry triplog.Entry) (int64, error)
	// Replace overwrites the full entry stored under id.
	Replace(id int64, entry triplog.Entry) error
	Remove(id int64) error
	RemoveAll() error
}

// StoreProvider opens and manages the per-collection stores a workspace
// owns. Dropping a collection deletes all of its persisted rows.
type StoreProvider interface {
	Open(name string) (Store, error)
	Rename(oldName, newName string) error
	Drop(name string) error
	// Names returns the persisted collection names in creation order.
	Names() ([]string, error)
}

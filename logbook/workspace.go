package logbook

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNameRequired       = errors.New("collection name is required")
	ErrDuplicateName      = errors.New("collection name already exists")
	ErrNoActiveCollection = errors.New("no active collection")
)

// Workspace owns zero or more named collections and tracks which one is
// active. Names are unique with case-sensitive exact matching; creation
// order is preserved for presentation.
type Workspace struct {
	provider    StoreProvider
	collections []*Collection
	active      int
}

func NewWorkspace(provider StoreProvider) *Workspace {
	return &Workspace{provider: provider, active: -1}
}

// LoadWorkspace hydrates a workspace from every persisted collection. The
// first collection becomes active when any exist.
func LoadWorkspace(provider StoreProvider) (*Workspace, error) {
	w := NewWorkspace(provider)

	names, err := provider.Names()
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	for _, name := range names {
		store, err := provider.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open collection %q: %w", name, err)
		}
		collection := NewCollection(name, store)
		if err := collection.Load(); err != nil {
			return nil, err
		}
		w.collections = append(w.collections, collection)
	}
	if len(w.collections) > 0 {
		w.active = 0
	}
	return w, nil
}

func (w *Workspace) Len() int {
	return len(w.collections)
}

// Names returns the collection names in creation order.
func (w *Workspace) Names() []string {
	names := make([]string, 0, len(w.collections))
	for _, collection := range w.collections {
		names = append(names, collection.name)
	}
	return names
}

// Active returns the active collection, or false when the workspace has no
// selection.
func (w *Workspace) Active() (*Collection, bool) {
	if w.active < 0 || w.active >= len(w.collections) {
		return nil, false
	}
	return w.collections[w.active], true
}

// ActiveIndex returns the active position, or -1 when none is selected.
func (w *Workspace) ActiveIndex() int {
	return w.active
}

// Collection resolves a collection by name.
func (w *Workspace) Collection(name string) (*Collection, bool) {
	if index := w.indexOf(name); index >= 0 {
		return w.collections[index], true
	}
	return nil, false
}

// SwitchActive selects the collection at the given position.
func (w *Workspace) SwitchActive(index int) error {
	if index < 0 || index >= len(w.collections) {
		return fmt.Errorf("collection index %d out of range [0, %d)", index, len(w.collections))
	}
	w.active = index
	return nil
}

// SwitchActiveByName selects the named collection.
func (w *Workspace) SwitchActiveByName(name string) error {
	index := w.indexOf(name)
	if index < 0 {
		return fmt.Errorf("collection %q does not exist", name)
	}
	w.active = index
	return nil
}

// CreateCollection creates an empty named collection and makes it active.
func (w *Workspace) CreateCollection(name string) (*Collection, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if w.indexOf(name) >= 0 {
		return nil, fmt.Errorf("collection %q: %w", name, ErrDuplicateName)
	}

	store, err := w.provider.Open(name)
	if err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	collection := NewCollection(name, store)
	w.collections = append(w.collections, collection)
	w.active = len(w.collections) - 1
	return collection, nil
}

// RenameActive renames the active collection. Renaming to its own current
// name is a no-op success.
func (w *Workspace) RenameActive(newName string) error {
	collection, ok := w.Active()
	if !ok {
		return ErrNoActiveCollection
	}
	if strings.TrimSpace(newName) == "" {
		return ErrNameRequired
	}
	if newName == collection.name {
		return nil
	}
	if w.indexOf(newName) >= 0 {
		return fmt.Errorf("collection %q: %w", newName, ErrDuplicateName)
	}

	if err := w.provider.Rename(collection.name, newName); err != nil {
		return fmt.Errorf("rename collection %q: %w", collection.name, err)
	}
	collection.name = newName
	return nil
}

// DeleteActive removes the active collection together with all of its
// persisted entries. The selection becomes none; the caller picks the next
// collection explicitly.
func (w *Workspace) DeleteActive() error {
	collection, ok := w.Active()
	if !ok {
		return ErrNoActiveCollection
	}

	if err := w.provider.Drop(collection.name); err != nil {
		return fmt.Errorf("delete collection %q: %w", collection.name, err)
	}

	w.collections = append(w.collections[:w.active], w.collections[w.active+1:]...)
	w.active = -1
	return nil
}

func (w *Workspace) indexOf(name string) int {
	for i, collection := range w.collections {
		if collection.name == name {
			return i
		}
	}
	return -1
}

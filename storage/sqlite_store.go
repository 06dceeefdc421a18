package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"travelog/internal/timetext"
	"travelog/logbook"
	"travelog/triplog"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists collections and their log entries in one SQLite
// database file. It implements logbook.StoreProvider; the per-collection
// views it opens implement logbook.Store.
type SQLiteStore struct {
	db *sql.DB
}

var ErrCollectionNotFound = errors.New("collection not found")

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS collections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	collection_id INTEGER NOT NULL,
	origin TEXT NOT NULL,
	destination TEXT NOT NULL,
	mode TEXT NOT NULL,
	start TEXT NOT NULL,
	end TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_logs_collection ON logs(collection_id);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Names returns the persisted collection names in creation order.
func (s *SQLiteStore) Names() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM collections ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 8)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan collection name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collections: %w", err)
	}
	return names, nil
}

// Open returns the per-collection store for name, creating the collection
// row when it does not exist yet.
func (s *SQLiteStore) Open(name string) (logbook.Store, error) {
	id, err := s.collectionID(name)
	if err == nil {
		return &collectionStore{db: s.db, collectionID: id}, nil
	}
	if !errors.Is(err, ErrCollectionNotFound) {
		return nil, err
	}

	res, err := s.db.Exec(`INSERT INTO collections (name) VALUES (?);`, name)
	if err != nil {
		return nil, fmt.Errorf("insert collection %q: %w", name, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read inserted collection id: %w", err)
	}
	return &collectionStore{db: s.db, collectionID: id}, nil
}

// Rename changes a collection's name in place; entry rows stay attached to
// the stable collection id.
func (s *SQLiteStore) Rename(oldName, newName string) error {
	res, err := s.db.Exec(`UPDATE collections SET name = ? WHERE name = ?;`, newName, oldName)
	if err != nil {
		return fmt.Errorf("rename collection %q: %w", oldName, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read renamed row count: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("collection %q: %w", oldName, ErrCollectionNotFound)
	}
	return nil
}

// Drop deletes a collection together with all of its log rows.
func (s *SQLiteStore) Drop(name string) error {
	id, err := s.collectionID(name)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin drop transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM logs WHERE collection_id = ?;`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete logs for collection %q: %w", name, err)
	}
	if _, err := tx.Exec(`DELETE FROM collections WHERE id = ?;`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete collection %q: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit drop transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) collectionID(name string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM collections WHERE name = ?;`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("collection %q: %w", name, ErrCollectionNotFound)
		}
		return 0, fmt.Errorf("query collection %q: %w", name, err)
	}
	return id, nil
}

// collectionStore is the logbook.Store view over one collection's rows.
type collectionStore struct {
	db           *sql.DB
	collectionID int64
}

func (c *collectionStore) ListAll() ([]triplog.Entry, error) {
	const query = `
SELECT id, origin, destination, mode, start, end, description
FROM logs
WHERE collection_id = ?
ORDER BY id;
`
	rows, err := c.db.Query(query, c.collectionID)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	entries := make([]triplog.Entry, 0, 64)
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate logs: %w", err)
	}
	return entries, nil
}

func (c *collectionStore) Get(id int64) (triplog.Entry, error) {
	const query = `
SELECT id, origin, destination, mode, start, end, description
FROM logs
WHERE collection_id = ? AND id = ?;
`
	row := c.db.QueryRow(query, c.collectionID, id)
	entry, err := scanEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return triplog.Entry{}, fmt.Errorf("log %d: %w", id, triplog.ErrNotFound)
		}
		return triplog.Entry{}, err
	}
	return entry, nil
}

func (c *collectionStore) Insert(entry triplog.Entry) (int64, error) {
	const insertStmt = `
INSERT INTO logs (collection_id, origin, destination, mode, start, end, description)
VALUES (?, ?, ?, ?, ?, ?, ?);`

	res, err := c.db.Exec(
		insertStmt,
		c.collectionID,
		entry.Origin,
		entry.Destination,
		entry.Mode,
		timetext.FormatStorage(entry.Start),
		timetext.FormatStorage(entry.End),
		entry.Description,
	)
	if err != nil {
		return 0, fmt.Errorf("insert log: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted row id: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid inserted row id %d", id)
	}
	return id, nil
}

func (c *collectionStore) Replace(id int64, entry triplog.Entry) error {
	const updateStmt = `
UPDATE logs
SET origin = ?,
	destination = ?,
	mode = ?,
	start = ?,
	end = ?,
	description = ?
WHERE collection_id = ? AND id = ?;`

	res, err := c.db.Exec(
		updateStmt,
		entry.Origin,
		entry.Destination,
		entry.Mode,
		timetext.FormatStorage(entry.Start),
		timetext.FormatStorage(entry.End),
		entry.Description,
		c.collectionID,
		id,
	)
	if err != nil {
		return fmt.Errorf("update log %d: %w", id, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read updated row count: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("log %d: %w", id, triplog.ErrNotFound)
	}
	return nil
}

func (c *collectionStore) Remove(id int64) error {
	res, err := c.db.Exec(`DELETE FROM logs WHERE collection_id = ? AND id = ?;`, c.collectionID, id)
	if err != nil {
		return fmt.Errorf("delete log %d: %w", id, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read deleted row count: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("log %d: %w", id, triplog.ErrNotFound)
	}
	return nil
}

func (c *collectionStore) RemoveAll() error {
	if _, err := c.db.Exec(`DELETE FROM logs WHERE collection_id = ?;`, c.collectionID); err != nil {
		return fmt.Errorf("delete logs: %w", err)
	}
	return nil
}

func scanEntry(scan func(dest ...any) error) (triplog.Entry, error) {
	var (
		entry    triplog.Entry
		startRaw string
		endRaw   string
	)

	if err := scan(
		&entry.ID,
		&entry.Origin,
		&entry.Destination,
		&entry.Mode,
		&startRaw,
		&endRaw,
		&entry.Description,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return triplog.Entry{}, err
		}
		return triplog.Entry{}, fmt.Errorf("scan log: %w", err)
	}

	var err error
	entry.Start, err = timetext.ParseStorage(startRaw)
	if err != nil {
		return triplog.Entry{}, err
	}
	entry.End, err = timetext.ParseStorage(endRaw)
	if err != nil {
		return triplog.Entry{}, err
	}
	return entry, nil
}

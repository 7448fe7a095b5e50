// Package repo contains all database access for Wayplan. The whole trip
// collection is stored as one JSON document under a fixed namespaced key —
// the same save-wholesale model the client app uses with browser local
// storage. No business logic lives here, only SQL and JSON mapping.
package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wayplan/wayplan/internal/domain"
)

// CollectionKey is the fixed key the trip collection is stored under.
const CollectionKey = "wayplan:trips"

// db is the minimal interface satisfied by *sql.DB, *sql.Conn, and *sql.Tx.
// Accepting this interface instead of *sql.DB directly allows tests to pass
// a transaction that is rolled back after each test.
type db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CollectionStore defines the persistence operations for the trip
// collection. The service layer depends on this interface, not the concrete
// sqlite implementation, so it can be unit-tested with a mock.
type CollectionStore interface {
	// Load returns the stored collection in its raw (possibly legacy) shape,
	// or nil when nothing has been saved yet. Callers must run
	// domain.MigrateAll on the result before using it.
	Load(ctx context.Context) ([]domain.RawTrip, error)

	// Save replaces the stored collection with trips.
	Save(ctx context.Context, trips domain.Collection) error
}

// sqliteCollectionStore is the sqlite implementation of CollectionStore.
type sqliteCollectionStore struct {
	db db
}

// NewCollectionStore constructs a CollectionStore backed by the provided db.
// In production pass the *sql.DB from Open; in tests pass a *sql.Tx for
// rollback isolation.
func NewCollectionStore(db db) CollectionStore {
	return &sqliteCollectionStore{db: db}
}

// Load reads and unmarshals the collection document.
func (s *sqliteCollectionStore) Load(ctx context.Context) ([]domain.RawTrip, error) {
	const q = `SELECT value FROM documents WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, q, CollectionKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // nothing saved yet — not an error
	}
	if err != nil {
		return nil, fmt.Errorf("repo.CollectionStore.Load: %w", err)
	}

	var raws []domain.RawTrip
	if err := json.Unmarshal([]byte(value), &raws); err != nil {
		return nil, fmt.Errorf("repo.CollectionStore.Load: unmarshal: %w", err)
	}
	return raws, nil
}

// Save marshals trips and overwrites the collection document.
func (s *sqliteCollectionStore) Save(ctx context.Context, trips domain.Collection) error {
	if trips == nil {
		trips = domain.Collection{}
	}
	value, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("repo.CollectionStore.Save: marshal: %w", err)
	}

	const q = `
		INSERT INTO documents (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, q, CollectionKey, string(value)); err != nil {
		return fmt.Errorf("repo.CollectionStore.Save: %w", err)
	}
	return nil
}

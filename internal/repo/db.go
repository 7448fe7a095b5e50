package repo

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
)

// Open opens (creating if needed) the sqlite database at path and applies
// the pragmas the store relies on. WAL mode keeps reads unblocked while a
// save is in flight; the busy timeout covers the brief writer lock instead
// of surfacing SQLITE_BUSY to callers.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("repo.Open: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("repo.Open: %s: %w", pragma, err)
		}
	}
	return db, nil
}

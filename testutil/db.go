// Package testutil provides shared helpers for tests that need a real
// store. The store is an embedded sqlite file, so unlike a networked
// database there is nothing to opt into — every test can have its own.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/wayplan/wayplan/internal/repo"
	"github.com/wayplan/wayplan/migrations"
)

// NewDB opens a sqlite database in a per-test temporary directory and
// applies all embedded migrations. The connection is closed automatically
// when the test (and all its subtests) finish; the file goes away with the
// temp dir.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := repo.Open(filepath.Join(t.TempDir(), "wayplan_test.db"))
	if err != nil {
		t.Fatalf("testutil.NewDB: open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		t.Fatalf("testutil.NewDB: goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("testutil.NewDB: goose up: %v", err)
	}
	return db
}

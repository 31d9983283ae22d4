package testsupport

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

var dbCounter atomic.Int64

// NewSQLiteMemoryDB opens an isolated in-memory sqlite database for tests.
// The database is named per call so pooled connections share state within a
// test without leaking rows across tests.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	return sql.Open("sqlite3", dsn)
}

// NewBunDB wraps a sqlite handle with the bun sqlite dialect.
func NewBunDB(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, sqlitedialect.New())
}

// ApplyMigrations executes every .sql file in the provided filesystem in
// lexical order.
func ApplyMigrations(ctx context.Context, db *bun.DB, migrations fs.FS, glob string) error {
	entries, err := fs.Glob(migrations, glob)
	if err != nil {
		return err
	}
	sort.Strings(entries)
	for _, entry := range entries {
		payload, err := fs.ReadFile(migrations, entry)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, string(payload)); err != nil {
			return err
		}
	}
	return nil
}
